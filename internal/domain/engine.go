package domain

type EngineHealth struct {
	IsAvailable bool     `json:"isAvailable"`
	Languages   []string `json:"languages,omitempty"`
}

type EngineInfo struct {
	Version string       `json:"version"`
	Health  EngineHealth `json:"health"`
}

type Utterance struct {
	Text string `json:"text"`
}

type Intent struct {
	Name       string   `json:"name"`
	Contexts   []string `json:"contexts,omitempty"`
	Utterances []string `json:"utterances"`
	Slots      []Slot   `json:"slots,omitempty"`
}

type Slot struct {
	Name     string   `json:"name"`
	Entities []string `json:"entities"`
}

type Entity struct {
	Name     string              `json:"name"`
	Type     string              `json:"type"`
	Fuzzy    float64             `json:"fuzzy,omitempty"`
	Values   map[string][]string `json:"values,omitempty"`
	Patterns []string            `json:"patterns,omitempty"`
}

// TrainSet is everything the engine needs to train one language of one bot.
type TrainSet struct {
	ModelID  ModelID  `json:"modelId"`
	Language string   `json:"language"`
	Intents  []Intent `json:"intents"`
	Entities []Entity `json:"entities"`
	Seed     int64    `json:"seed"`
}

type EngineTrainingStatus struct {
	Status   TrainingStatus `json:"status"`
	Progress float64        `json:"progress"`
	Error    string         `json:"error,omitempty"`
}

type IntentPrediction struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type Prediction struct {
	ModelID  ModelID            `json:"modelId"`
	Language string             `json:"language"`
	Text     string             `json:"text"`
	Intents  []IntentPrediction `json:"intents"`
}
