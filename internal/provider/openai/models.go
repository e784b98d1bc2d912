package openai

// SupportedModels returns the list of models supported by the OpenAI provider.
func SupportedModels() []string {
	return []string{
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
		"gpt-4",
		"gpt-3.5-turbo",
		"o1",
	}
}

// supportedModelSet provides O(1) lookup.
//
//nolint:gochecknoglobals // static lookup table
var supportedModelSet = buildModelSet(SupportedModels())

func buildModelSet(models []string) map[string]bool {
	set := make(map[string]bool, len(models))
	for _, model := range models {
		set[model] = true
	}
	return set
}
