// Package pattern provides the catalog of named number patterns and the detector that runs it.
package pattern

import "github.com/Veraticus/fancy-numbers/internal/model"

// Classifier tags a phone number with every pattern it matches.
type Classifier interface {
	// Classify returns the names of all matching patterns in catalog order.
	Classify(n model.PhoneNumber) []model.PatternName
}
