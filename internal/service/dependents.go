package service

// initialState is the activation state of a new product or route. Under an
// inactive location it joins the location's cascade unless the caller asked
// for an inactive row explicitly.
func initialState(parentActive bool, requested *bool) (active, cascaded bool) {
	if requested != nil && !*requested {
		return false, false
	}
	if !parentActive {
		return false, true
	}
	return true, false
}

// applyActive handles an explicit is_active edit. Only a real change moves
// the flags: switching on clears the cascade mark, switching off makes the
// row independently inactive. Resubmitting the current value is a no-op, so
// editing other fields of a cascaded row keeps it in the cascade.
func applyActive(active, cascaded *bool, requested *bool) {
	if requested == nil || *requested == *active {
		return
	}
	*active = *requested
	*cascaded = false
}
