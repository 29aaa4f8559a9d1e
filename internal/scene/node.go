// Package scene provides a minimal named node graph standing in for the
// host renderer's scene tree. Nodes carry local transforms and optional
// spherical hit proxies; the simulation cores resolve the nodes they
// drive once, by name, and treat missing nodes as inert.
package scene

import (
	"math"

	"github.com/san-kum/platterlab/internal/geom"
)

type Node struct {
	Name     string
	Position geom.Vec3
	Rotation geom.Vec3 // Euler XYZ, radians
	Scale    geom.Vec3

	// HitRadius enables raycast hit-testing against this node.
	// Zero means the node is not a hit target.
	HitRadius float64

	Parent   *Node
	Children []*Node
}

func NewNode(name string) *Node {
	return &Node{Name: name, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}}
}

func (n *Node) AddChild(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

// Find returns the first node with the given name in a depth-first
// walk rooted at n, including n itself. Nil when absent.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Traverse visits n and every descendant. Returning false from the
// visitor stops the walk.
func (n *Node) Traverse(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Traverse(visit) {
			return false
		}
	}
	return true
}

// rotate applies the node's Euler rotation to a local point.
func (n *Node) rotate(p geom.Vec3) geom.Vec3 {
	cx, sx := math.Cos(n.Rotation.X), math.Sin(n.Rotation.X)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(n.Rotation.Y), math.Sin(n.Rotation.Y)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(n.Rotation.Z), math.Sin(n.Rotation.Z)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// WorldPosition walks the parent chain applying each ancestor's
// rotation and translation.
func (n *Node) WorldPosition() geom.Vec3 {
	pos := geom.Vec3{}
	for cur := n; cur != nil; cur = cur.Parent {
		pos = geom.Vec3{X: pos.X * cur.Scale.X, Y: pos.Y * cur.Scale.Y, Z: pos.Z * cur.Scale.Z}
		pos = cur.rotate(pos).Add(cur.Position)
	}
	return pos
}

// HitTest intersects the ray with the node's hit sphere in world
// space. A nil node or a node without a hit proxy never hits.
func (n *Node) HitTest(r geom.Ray) (float64, bool) {
	if n == nil || n.HitRadius <= 0 {
		return 0, false
	}
	return r.IntersectSphere(n.WorldPosition(), n.HitRadius)
}
