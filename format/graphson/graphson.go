package graphson

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// maxLineSize is the largest vertex line the parser will accept
const maxLineSize = 16 * 1024 * 1024

// Vertex is a single parsed GraphSON vertex. The raw JSON is retained so
// properties and edge lists can be extracted lazily.
type Vertex struct {
	ID  int64
	Raw []byte
}

// Property returns the value at the given gjson path within this vertex's JSON
func (v *Vertex) Property(path string) gjson.Result {
	return gjson.GetBytes(v.Raw, path)
}

// ParseVertex parses a single GraphSON vertex object
func ParseVertex(line []byte) (*Vertex, error) {
	if !gjson.ValidBytes(line) {
		return nil, fmt.Errorf("Invalid GraphSON vertex: %s", line)
	}
	id := gjson.GetBytes(line, "_id")
	if !id.Exists() {
		return nil, fmt.Errorf("GraphSON vertex is missing an _id: %s", line)
	}
	raw := make([]byte, len(line))
	copy(raw, line)
	return &Vertex{ID: id.Int(), Raw: raw}, nil
}

// Parse reads line-delimited GraphSON vertex data, one vertex object per
// line. Blank lines are ignored.
func Parse(r io.Reader) ([]*Vertex, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	vertices := []*Vertex{}
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		vertex, err := ParseVertex(line)
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, vertex)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vertices, nil
}
