package catalog

// Reader is the read-only view of the catalog served by the admin endpoint.
type Reader interface {
	List() []Entry
	Get(id int) (Book, bool)
	Stats() (total, owned int)
}

// Store is everything the shell needs from the catalog.
type Store interface {
	Reader

	Add(title, author, content string) int
	Update(id int, title, author, content string) bool
	Delete(id int) bool
	SetAvailability(id int, available bool) bool

	Purchase(id int) error
	Return(id int) error
	Read(id int) (Book, error)
}

func NewStore() Store {
	return NewMemStore()
}
