//go:build race

package encoder

func init() { raceEnabled = true }
