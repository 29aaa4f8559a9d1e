package scene

import (
	"math"
	"testing"

	"github.com/san-kum/platterlab/internal/geom"
)

func buildTree() *Node {
	root := NewNode("root")
	a := root.AddChild(NewNode("deck"))
	a.AddChild(NewNode("Platter"))
	arm := a.AddChild(NewNode("Mount")).AddChild(NewNode("Tonearm"))
	arm.HitRadius = 0.5
	return root
}

func TestFind(t *testing.T) {
	root := buildTree()

	if root.Find("root") != root {
		t.Error("Find should include the receiver")
	}
	if n := root.Find("Tonearm"); n == nil || n.Name != "Tonearm" {
		t.Errorf("deep find failed: %v", n)
	}
	if root.Find("nub") != nil {
		t.Error("missing name should return nil")
	}

	var nilNode *Node
	if nilNode.Find("x") != nil {
		t.Error("nil receiver should return nil")
	}
}

func TestTraverseStops(t *testing.T) {
	root := buildTree()

	visited := 0
	root.Traverse(func(n *Node) bool {
		visited++
		return n.Name != "deck"
	})
	if visited != 2 {
		t.Errorf("walk should stop at deck, visited %d", visited)
	}

	total := 0
	root.Traverse(func(*Node) bool { total++; return true })
	if total != 5 {
		t.Errorf("full walk visited %d of 5", total)
	}
}

func TestWorldPositionComposesParents(t *testing.T) {
	root := NewNode("root")
	root.Position = geom.Vec3{X: 1}

	child := root.AddChild(NewNode("child"))
	child.Position = geom.Vec3{X: 2}

	got := child.WorldPosition()
	if got != (geom.Vec3{X: 3}) {
		t.Errorf("translation chain = %v", got)
	}

	// Rotating the parent 90 degrees about Y swings the child onto Z.
	root.Rotation.Y = math.Pi / 2
	got = child.WorldPosition()
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Z+2) > 1e-9 {
		t.Errorf("rotated chain = %v", got)
	}
}

func TestWorldPositionAppliesScale(t *testing.T) {
	root := NewNode("root")
	root.Scale = geom.Vec3{X: 2, Y: 2, Z: 2}

	child := root.AddChild(NewNode("child"))
	child.Position = geom.Vec3{X: 1}

	if got := child.WorldPosition(); got != (geom.Vec3{X: 2}) {
		t.Errorf("scaled chain = %v", got)
	}
}

func TestHitTest(t *testing.T) {
	n := NewNode("button")
	n.Position = geom.Vec3{Z: -5}
	ray := geom.Ray{Origin: geom.Vec3{}, Dir: geom.Vec3{Z: -1}}

	if _, ok := n.HitTest(ray); ok {
		t.Error("zero hit radius must never hit")
	}

	n.HitRadius = 0.5
	tHit, ok := n.HitTest(ray)
	if !ok || math.Abs(tHit-4.5) > 1e-9 {
		t.Errorf("hit = %v, %v", tHit, ok)
	}

	var nilNode *Node
	if _, ok := nilNode.HitTest(ray); ok {
		t.Error("nil node must never hit")
	}
}
