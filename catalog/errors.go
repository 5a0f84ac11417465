package catalog

import "errors"

var (
	// ErrSchema indicates the input is structurally unusable.
	ErrSchema = errors.New("unusable catalog schema")

	// ErrEmptyDataset indicates no rows survived normalization.
	ErrEmptyDataset = errors.New("dataset contains no courses")

	// ErrNoTitleColumn indicates no title-equivalent column could be identified.
	ErrNoTitleColumn = errors.New("no title-equivalent column found")
)
