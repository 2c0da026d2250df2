package util

// Envelope is the top-level object printed by -json output.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// List wraps one page of results with the pagination meta block.
func List(key string, items any, count, total, limit, offset int) Envelope {
	return Envelope{
		key: items,
		"meta": Envelope{
			"limit":  limit,
			"offset": offset,
			"count":  count,
			"total":  total,
		},
	}
}
