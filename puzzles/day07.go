package puzzles

import (
	"sort"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 7, Title: "Camel Cards", Part1: day07a, Part2: day07b})
}

// handType orders hand categories from weakest to strongest.
type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type hand struct {
	Cards string
	Bid   int64
	Type  handType
}

func day07a(in *input.Input) (int64, error) {
	return totalWinnings(in, false)
}

// day07b treats J as a joker: weakest card for tie-breaks but counted as
// whichever card makes the strongest type.
func day07b(in *input.Input) (int64, error) {
	return totalWinnings(in, true)
}

func totalWinnings(in *input.Input, jokers bool) (int64, error) {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	hands := make([]hand, 0, len(in.Lines))
	for i, line := range in.Lines {
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 5 {
			return 0, input.Malformed(i+1, line, "want five cards and a bid")
		}
		for _, c := range fields[0] {
			if !strings.ContainsRune(order, c) {
				return 0, input.Malformed(i+1, line, "unknown card %q", c)
			}
		}
		bid, err := input.ParseInt(i+1, line, fields[1])
		if err != nil {
			return 0, err
		}
		hands = append(hands, hand{Cards: fields[0], Bid: bid, Type: classify(fields[0], jokers)})
	}

	sort.SliceStable(hands, func(i, j int) bool {
		a, b := hands[i], hands[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		for k := range len(a.Cards) {
			if a.Cards[k] != b.Cards[k] {
				return strings.IndexByte(order, a.Cards[k]) < strings.IndexByte(order, b.Cards[k])
			}
		}
		return false
	})

	var total int64
	for rank, h := range hands {
		total += int64(rank+1) * h.Bid
	}

	return total, nil
}

// classify returns the type of cards. With jokers, every J joins the
// most frequent other card.
func classify(cards string, jokers bool) handType {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}
