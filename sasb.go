package esgview

// WeightEntry is one row of the SASB reference table: a disclosure topic and
// its materiality weight per industry. Weights are 1 (general relevance) or
// 2 (high relevance); an industry missing from the map has no defined weight
// for the topic.
type WeightEntry struct {
	Aspect  string         // 面向: 環境, 社會 or 治理
	Topic   string         // 議題
	Weights map[string]int // industry name → weight
}

// WeightTable is the ordered SASB reference table. The order of Entries
// fixes the topic grid shown per industry.
type WeightTable struct {
	Entries []WeightEntry
}

// Topics returns the topic labels in table order.
func (t *WeightTable) Topics() []string {
	topics := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		topics = append(topics, e.Topic)
	}
	return topics
}

// HasIndustry reports whether any entry defines a weight for the industry.
func (t *WeightTable) HasIndustry(industry string) bool {
	for _, e := range t.Entries {
		if _, ok := e.Weights[industry]; ok {
			return true
		}
	}
	return false
}

// Weight returns the weight of topic for industry. ok is false when the
// topic is unknown or the industry has no defined weight for it.
func (t *WeightTable) Weight(topic, industry string) (weight int, ok bool) {
	for _, e := range t.Entries {
		if e.Topic != topic {
			continue
		}
		weight, ok = e.Weights[industry]
		return weight, ok
	}
	return 0, false
}
