package util

import (
	"fmt"
	"jokerpoker/internal/rng"
)

var adjectives = []string{
	"Lucky", "Wild", "Bluffing", "Sly", "Steady", "Quiet", "Grinning", "Stoic", "Daring", "Patient",
	"Reckless", "Sharp", "Lucid", "Cagey", "Nimble", "Shrewd", "Cool", "Jolly", "Crafty", "Bold",
}

var animals = []string{
	"Fox", "Owl", "Otter", "Badger", "Heron", "Lynx", "Marten", "Raven", "Walrus", "Weasel",
	"Falcon", "Coyote", "Ferret", "Jackal", "Magpie", "Mongoose", "Panther", "Viper", "Beaver", "Moose",
}

var random rng.Generator = rng.Crypto{}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	return RandomName(random)
}

// RandomName is like GetRandomName, but draws from the supplied generator
func RandomName(g rng.Generator) string {
	adjectivesIndex := g.Intn(len(adjectives))
	animalsIndex := g.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
