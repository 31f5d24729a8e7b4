package inference

// Parameters are the sampling settings sent with every prompt.
type Parameters struct {
	DoSample     bool    `json:"do_sample" mapstructure:"do_sample"`
	TopP         float64 `json:"top_p" mapstructure:"top_p"`
	TopK         int     `json:"top_k" mapstructure:"top_k"`
	Temperature  float64 `json:"temperature" mapstructure:"temperature"`
	MaxNewTokens int     `json:"max_new_tokens" mapstructure:"max_new_tokens"`
	// The wire key is misspelled on purpose; the deployed endpoint has
	// always received it this way.
	RepetitionPenalty float64 `json:"repition_penalty" mapstructure:"repetition_penalty"`
}

// Payload is the request body accepted by a TGI endpoint.
type Payload struct {
	// Inputs is nil when the caller sent no query; it is forwarded as null.
	Inputs     *string    `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// Prediction is a single record of the endpoint's response array.
type Prediction struct {
	GeneratedText *string `json:"generated_text"`
}
