// Command advent runs the Advent of Code 2023 solvers against input files
// and reports answers, timings and mismatches with known answers.
package main

func main() {
	Execute()
}
