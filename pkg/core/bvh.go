package core

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyBVH is returned when a BVH is built over zero shapes
	ErrEmptyBVH = errors.New("bvh: no shapes to build from")
	// ErrMissingBoundingBox is returned when a shape reports no bounding box
	ErrMissingBoundingBox = errors.New("bvh: shape has no bounding box")
)

// bvhRef addresses a child: values >= 0 index BVH.nodes, negative values
// encode a leaf shape index as -(index+1)
type bvhRef int32

func leafRef(shapeIndex int) bvhRef { return bvhRef(-(shapeIndex + 1)) }

func (r bvhRef) isLeaf() bool { return r < 0 }

func (r bvhRef) shapeIndex() int { return int(-r) - 1 }

// bvhNode is an arena entry: a cached bounding box and two child references
type bvhNode struct {
	box         AABB
	left, right bvhRef
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a flat arena addressed by index; the tree is immutable once built
// and safe for concurrent Hit calls.
type BVH struct {
	nodes  []bvhNode
	shapes []Shape
}

// boxedShape pairs a shape index with its bounding box during construction
type boxedShape struct {
	index int
	box   AABB
}

// NewBVH constructs a BVH over the given shapes for the shutter interval [time0, time1].
// Split axes are drawn from sampler, so a seeded sampler gives a reproducible tree.
// Every shape must report a bounding box.
func NewBVH(shapes []Shape, time0, time1 float64, sampler Sampler) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Make a copy of the shapes slice so callers can keep mutating theirs
	bvh := &BVH{
		shapes: make([]Shape, len(shapes)),
		nodes:  make([]bvhNode, 0, len(shapes)),
	}
	copy(bvh.shapes, shapes)

	entries := make([]boxedShape, len(shapes))
	for i, shape := range bvh.shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("%w (shape %d, %T)", ErrMissingBoundingBox, i, shape)
		}
		entries[i] = boxedShape{index: i, box: box}
	}

	bvh.build(entries, sampler)
	return bvh, nil
}

// build appends the node for entries to the arena and returns its index
func (bvh *BVH) build(entries []boxedShape, sampler Sampler) bvhRef {
	self := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{})

	axis := RandomInt(sampler, 3)

	var left, right bvhRef
	var leftBox, rightBox AABB

	switch len(entries) {
	case 1:
		// Degenerate leaf: the single shape is both children
		left, right = leafRef(entries[0].index), leafRef(entries[0].index)
		leftBox, rightBox = entries[0].box, entries[0].box
	case 2:
		first, second := entries[0], entries[1]
		if second.box.Min.Index(axis) < first.box.Min.Index(axis) {
			first, second = second, first
		}
		left, right = leafRef(first.index), leafRef(second.index)
		leftBox, rightBox = first.box, second.box
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].box.Min.Index(axis) < entries[j].box.Min.Index(axis)
		})

		mid := len(entries) / 2
		left = bvh.build(entries[:mid], sampler)
		right = bvh.build(entries[mid:], sampler)
		leftBox = bvh.nodes[left].box
		rightBox = bvh.nodes[right].box
	}

	bvh.nodes[self] = bvhNode{
		box:   SurroundingBox(leftBox, rightBox),
		left:  left,
		right: right,
	}
	return bvhRef(self)
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return bvh.hitRef(0, ray, tMin, tMax)
}

// hitRef tests the node's box, then both children over the full interval,
// and keeps whichever hit is closer
func (bvh *BVH) hitRef(ref bvhRef, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if ref.isLeaf() {
		return bvh.shapes[ref.shapeIndex()].Hit(ray, tMin, tMax)
	}

	node := &bvh.nodes[ref]
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := bvh.hitRef(node.left, ray, tMin, tMax)
	if node.right == node.left {
		return leftHit, hitLeft
	}
	rightHit, hitRight := bvh.hitRef(node.right, ray, tMin, tMax)

	switch {
	case hitLeft && hitRight:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case hitLeft:
		return leftHit, true
	case hitRight:
		return rightHit, true
	default:
		return nil, false
	}
}

// BoundingBox returns the cached root box
func (bvh *BVH) BoundingBox(time0, time1 float64) (AABB, bool) {
	return bvh.nodes[0].box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafRefs   int
	MaxDepth   int
	Shapes     int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{TotalNodes: len(bvh.nodes), Shapes: len(bvh.shapes)}
	bvh.collectStats(0, 0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(ref bvhRef, depth int, stats *BVHStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if ref.isLeaf() {
		stats.LeafRefs++
		return
	}
	node := bvh.nodes[ref]
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
