// Package loaders imports external geometry into the tracer's shape tree.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/shapes"
)

// OBJParser holds the result of parsing a Wavefront OBJ stream: the vertex
// and normal tables, the triangles sorted into their groups, and a count of
// the lines the parser did not recognize.
type OBJParser struct {
	IgnoredLines int

	vertices []core.Point
	normals  []core.Vector

	defaultGroup *shapes.Group
	groups       map[string]*shapes.Group
	groupOrder   []string
	current      *shapes.Group
}

// ParseOBJ reads a Wavefront OBJ stream. Vertex (v), normal (vn), face (f),
// and group (g) records are honored; polygons triangulate into a fan; faces
// carrying normal indices become smooth triangles. Anything else is counted
// and skipped.
func ParseOBJ(r io.Reader) (*OBJParser, error) {
	p := &OBJParser{
		defaultGroup: shapes.NewGroup(),
		groups:       make(map[string]*shapes.Group),
	}
	p.current = p.defaultGroup

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj stream: %w", err)
	}
	return p, nil
}

// ParseOBJFile reads a Wavefront OBJ file from disk.
func ParseOBJFile(path string) (*OBJParser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()

	p, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

func (p *OBJParser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		point, err := parseTriple(fields[1:])
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		p.vertices = append(p.vertices, core.NewPoint(point[0], point[1], point[2]))
	case "vn":
		normal, err := parseTriple(fields[1:])
		if err != nil {
			return fmt.Errorf("vertex normal: %w", err)
		}
		p.normals = append(p.normals, core.NewVector(normal[0], normal[1], normal[2]))
	case "f":
		if err := p.parseFace(fields[1:]); err != nil {
			return fmt.Errorf("face: %w", err)
		}
	case "g":
		if len(fields) < 2 {
			return fmt.Errorf("group record has no name")
		}
		p.current = p.namedGroup(fields[1])
	default:
		p.IgnoredLines++
	}
	return nil
}

func parseTriple(fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) != 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return out, fmt.Errorf("component %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseFace triangulates the polygon into a fan anchored at the first vertex
// and adds the triangles to the current group.
func (p *OBJParser) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("want at least 3 vertices, got %d", len(fields))
	}

	verts := make([]core.Point, len(fields))
	norms := make([]core.Vector, len(fields))
	smooth := false
	for i, f := range fields {
		vi, ni, hasNormal, err := parseFaceVertex(f)
		if err != nil {
			return err
		}
		if vi < 1 || vi > len(p.vertices) {
			return fmt.Errorf("vertex index %d out of range", vi)
		}
		verts[i] = p.vertices[vi-1]
		if hasNormal {
			if ni < 1 || ni > len(p.normals) {
				return fmt.Errorf("normal index %d out of range", ni)
			}
			norms[i] = p.normals[ni-1]
			smooth = true
		}
	}

	for i := 1; i < len(verts)-1; i++ {
		var tri *shapes.Triangle
		if smooth {
			tri = shapes.NewSmoothTriangle(verts[0], verts[i], verts[i+1], norms[0], norms[i], norms[i+1])
		} else {
			tri = shapes.NewTriangle(verts[0], verts[i], verts[i+1])
		}
		tri.SetInheritsMaterial(true)
		p.current.AddChild(tri)
	}
	return nil
}

// parseFaceVertex parses one face token: a vertex index, optionally followed
// by /texture/normal indices. Texture indices are accepted and dropped.
func parseFaceVertex(token string) (vertex, normal int, hasNormal bool, err error) {
	parts := strings.Split(token, "/")
	vertex, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("vertex index %q: %w", parts[0], err)
	}
	if len(parts) == 3 && parts[2] != "" {
		normal, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, false, fmt.Errorf("normal index %q: %w", parts[2], err)
		}
		hasNormal = true
	}
	return vertex, normal, hasNormal, nil
}

func (p *OBJParser) namedGroup(name string) *shapes.Group {
	if g, ok := p.groups[name]; ok {
		return g
	}
	g := shapes.NewGroup()
	g.SetInheritsMaterial(true)
	p.groups[name] = g
	p.groupOrder = append(p.groupOrder, name)
	return g
}

// Vertex returns the 1-based vertex from the OBJ vertex table.
func (p *OBJParser) Vertex(i int) core.Point {
	return p.vertices[i-1]
}

// Normal returns the 1-based normal from the OBJ normal table.
func (p *OBJParser) Normal(i int) core.Vector {
	return p.normals[i-1]
}

// DefaultGroup returns the group holding faces declared before any g record.
func (p *OBJParser) DefaultGroup() *shapes.Group {
	return p.defaultGroup
}

// Group returns a named group, or nil when the OBJ declared none by that
// name.
func (p *OBJParser) Group(name string) *shapes.Group {
	return p.groups[name]
}

// ToGroup assembles the parsed model into one group: the default group's
// triangles plus every named group, in declaration order. The default
// group's triangles are detached first, since a shape belongs to exactly one
// parent. The named groups and triangles defer to the returned group's
// material, so assigning it one styles the whole mesh.
func (p *OBJParser) ToGroup() *shapes.Group {
	root := shapes.NewGroup()
	for _, child := range p.defaultGroup.TakeChildren() {
		root.AddChild(child)
	}
	for _, name := range p.groupOrder {
		root.AddChild(p.groups[name])
	}
	return root
}
