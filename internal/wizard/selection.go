package wizard

// Selection is the outcome of a create-or-select question: either an
// existing entry or a request to create a new one.
type Selection struct {
	// ID is the identifier of the existing entry. Empty when Create is set.
	ID string
	// Create asks for a new entry to be collected and inserted.
	Create bool
}

// Existing selects the entry stored under id.
func Existing(id string) Selection {
	return Selection{ID: id}
}

// CreateNew requests a new entry.
func CreateNew() Selection {
	return Selection{Create: true}
}

// selectFrom maps a resolved choice index to a Selection. Index 0 is the
// create-new sentinel; the rest map onto ids in order.
func selectFrom(ids []string, index int) Selection {
	if index == 0 {
		return CreateNew()
	}
	return Existing(ids[index-1])
}
