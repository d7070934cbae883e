package puzzles

import (
	"sort"

	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 22, Title: "Sand Slabs", Part1: day22a, Part2: day22b})
}

// brick is an axis-aligned box of cubes with inclusive bounds.
type brick struct {
	Min, Max [3]int // x, y, z
}

// brickStack is the settled pile: for each brick, the bricks directly
// below it that hold it up and the bricks directly above that it holds.
type brickStack struct {
	bricks  []brick
	below   [][]int
	above   [][]int
	upwards []int // topological order of the "holds up" relation
}

// day22a counts bricks that can be removed without anything falling:
// every brick resting on it has another supporter.
func day22a(in *input.Input) (int64, error) {
	s, err := settleBricks(in)
	if err != nil {
		return 0, err
	}
	var n int64
	for i := range s.bricks {
		safe := true
		for _, j := range s.above[i] {
			if len(s.below[j]) < 2 {
				safe = false
				break
			}
		}
		if safe {
			n++
		}
	}

	return n, nil
}

// day22b sums, over every brick, how many other bricks would fall if it
// were removed.
func day22b(in *input.Input) (int64, error) {
	s, err := settleBricks(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for i := range s.bricks {
		total += int64(s.chainReaction(i))
	}

	return total, nil
}

// chainReaction walks the pile bottom-up; a brick falls once every brick
// it rests on has fallen. Ground-level bricks never fall.
func (s *brickStack) chainReaction(removed int) int {
	falling := make([]bool, len(s.bricks))
	falling[removed] = true
	n := 0
	for _, b := range s.upwards {
		if b == removed || len(s.below[b]) == 0 {
			continue
		}
		all := true
		for _, u := range s.below[b] {
			if !falling[u] {
				all = false
				break
			}
		}
		if all {
			falling[b] = true
			n++
		}
	}

	return n
}

func settleBricks(in *input.Input) (*brickStack, error) {
	bricks := make([]brick, 0, len(in.Lines))
	for i, line := range in.Lines {
		v, err := input.Ints(i+1, line)
		if err != nil {
			return nil, err
		}
		if len(v) != 6 {
			return nil, input.Malformed(i+1, line, "want x,y,z~x,y,z")
		}
		var b brick
		for k := range 3 {
			b.Min[k], b.Max[k] = int(min(v[k], v[k+3])), int(max(v[k], v[k+3]))
		}
		if b.Min[0] < 0 || b.Min[1] < 0 || b.Min[2] < 1 {
			return nil, input.Malformed(i+1, line, "brick below the ground")
		}
		bricks = append(bricks, b)
	}
	sort.SliceStable(bricks, func(i, j int) bool { return bricks[i].Min[2] < bricks[j].Min[2] })

	// Drop bricks lowest first onto a height map of the column tops.
	type top struct{ z, id int }
	tops := make(map[[2]int]top)
	s := &brickStack{
		bricks: bricks,
		below:  make([][]int, len(bricks)),
		above:  make([][]int, len(bricks)),
	}
	for id, b := range bricks {
		rest := 0
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				rest = max(rest, tops[[2]int{x, y}].z)
			}
		}
		seen := make(map[int]bool)
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				t, ok := tops[[2]int{x, y}]
				if ok && rest > 0 && t.z == rest && !seen[t.id] {
					seen[t.id] = true
					s.below[id] = append(s.below[id], t.id)
					s.above[t.id] = append(s.above[t.id], id)
				}
			}
		}
		height := b.Max[2] - b.Min[2]
		b.Min[2] = rest + 1
		b.Max[2] = b.Min[2] + height
		bricks[id] = b
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				tops[[2]int{x, y}] = top{z: b.Max[2], id: id}
			}
		}
	}

	ids := make([]int, len(bricks))
	for i := range ids {
		ids[i] = i
	}
	order, err := dfs.TopologicalSort(ids, func(i int) []int { return s.above[i] })
	if err != nil {
		return nil, err
	}
	s.upwards = order

	return s, nil
}
