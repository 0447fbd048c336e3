// Package scene generates the small local maps the player walks inside a point of interest.
package scene

import (
	"fmt"
	"strings"
)

// Descriptor is the content of a settlement: who lives there and how.
type Descriptor struct {
	Name       string
	Species    string // Species ID (e.g., "elf")
	SpeciesTag string // Display name (e.g., "Elf")
	State      string // Display name (e.g., "Thriving")
	StateID    string // State ID (e.g., "ruins")
	Governance string // Adjective (e.g., "Monarchic")
	Industry   string // Industry ID
	Activity   string // Industry description
	Size       int    // Population
}

// SizeClass buckets the population into a word.
func (d Descriptor) SizeClass() string {
	switch {
	case d.Size <= 50:
		return "tiny"
	case d.Size <= 200:
		return "small"
	case d.Size <= 500:
		return "medium"
	default:
		return "large"
	}
}

// Description returns the one-sentence summary shown on entry.
func (d Descriptor) Description() string {
	return fmt.Sprintf("A %s %s settlement of %ss under %s rule, where %s.",
		strings.ToLower(d.State), d.SizeClass(), d.SpeciesTag, d.Governance, d.Activity)
}

// Decayed reports whether the settlement has fallen into ruin.
func (d Descriptor) Decayed() bool {
	return d.StateID == "ruins" || d.StateID == "abandoned"
}

// Greeting returns the message shown when the player enters.
func (d Descriptor) Greeting() string {
	switch d.StateID {
	case "ruins", "abandoned":
		return fmt.Sprintf("Exploring the %s ruins of %s.", d.SpeciesTag, d.Name)
	case "sacred":
		return fmt.Sprintf("You pray at the sacred site of the %ss.", d.SpeciesTag)
	case "cursed":
		return "You attempt to cleanse this cursed place."
	case "hidden":
		return "You investigate the hidden location."
	default:
		return fmt.Sprintf("Entering the %s settlement of %ss.", strings.ToLower(d.State), d.SpeciesTag)
	}
}

// Prompt returns the interaction hint shown while standing on the settlement.
func (d Descriptor) Prompt() string {
	return "(E) Enter " + d.Name
}
