package puzzles

import (
	"strings"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func init() {
	Register(Solution{Day: 2, Title: "Cube Conundrum", Part1: day02a, Part2: day02b})
}

// cubeSet counts cubes by colour.
type cubeSet struct {
	Red, Green, Blue int64
}

// bagLimits is the bag content games are checked against.
var bagLimits = cubeSet{Red: 12, Green: 13, Blue: 14}

type game struct {
	ID   int64
	Most cubeSet // per-colour maximum over all reveals
}

func day02a(in *input.Input) (int64, error) {
	games, err := parseGames(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, g := range games {
		if g.Most.Red <= bagLimits.Red && g.Most.Green <= bagLimits.Green && g.Most.Blue <= bagLimits.Blue {
			sum += g.ID
		}
	}

	return sum, nil
}

func day02b(in *input.Input) (int64, error) {
	games, err := parseGames(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, g := range games {
		sum += g.Most.Red * g.Most.Green * g.Most.Blue
	}

	return sum, nil
}

// parseGames reads lines of the form "Game 7: 3 blue, 4 red; 1 green".
func parseGames(in *input.Input) ([]game, error) {
	games := make([]game, 0, len(in.Lines))
	for i, line := range in.Lines {
		head, body, err := input.Cut(i+1, line, ":")
		if err != nil {
			return nil, err
		}
		id, err := input.ParseInt(i+1, line, strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, err
		}
		g := game{ID: id}
		for _, reveal := range strings.Split(body, ";") {
			for _, item := range strings.Split(reveal, ",") {
				fields := strings.Fields(item)
				if len(fields) != 2 {
					return nil, input.Malformed(i+1, line, "bad cube count %q", item)
				}
				n, err := input.ParseInt(i+1, line, fields[0])
				if err != nil {
					return nil, err
				}
				switch fields[1] {
				case "red":
					g.Most.Red = max(g.Most.Red, n)
				case "green":
					g.Most.Green = max(g.Most.Green, n)
				case "blue":
					g.Most.Blue = max(g.Most.Blue, n)
				default:
					return nil, input.Malformed(i+1, line, "unknown colour %q", fields[1])
				}
			}
		}
		games = append(games, g)
	}

	return games, nil
}
