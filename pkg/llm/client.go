package llm

// BriefInput is one headline handed to the brief model.
type BriefInput struct {
	Title     string
	Publisher string
	Topic     string
}

// Client produces a one-paragraph plain-text brief over the current
// set of headlines.
type Client interface {
	Brief(inputs []BriefInput) (string, error)
	ModelName() string
}
