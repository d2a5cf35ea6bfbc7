package service

// verifyScope checks that every participant belongs to the active event.
// A mismatch reports ErrNotFound rather than a permission error so the
// response never confirms that the participant exists under another event.
// Relation writes (allocations, attendance, meal selections) pass every
// participant's event id here before the write is permitted.
func verifyScope(activeEventID int64, participantEventIDs ...int64) error {
	for _, id := range participantEventIDs {
		if id != activeEventID {
			return ErrNotFound
		}
	}
	return nil
}
