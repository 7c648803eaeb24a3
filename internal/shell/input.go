package shell

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Input reads the console line by line. Lines have no length limit.
type Input struct {
	r *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// Line returns the next line without its line ending. A final line with no
// trailing newline is returned normally; io.EOF follows it.
func (in *Input) Line() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Lines reads until an empty line and joins what it read with "\n".
// End of input also terminates the block.
func (in *Input) Lines() (string, error) {
	var lines []string
	for {
		line, err := in.Line()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// ID reads a line and parses it as a decimal book id.
func (in *Input) ID() (int, error) {
	line, err := in.Line()
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
