package utils

// PageWindow computes the visible page-number window around currentPage.
// Pages 1 and totalPages are rendered separately by convention, so the
// window is clamped to [2, totalPages-1]. Near either edge the window is
// pinned so that up to five page links stay visible.
func PageWindow(currentPage, totalPages int) (startPage, endPage int) {
	const window = 2

	startPage = currentPage - window
	if startPage < 2 {
		startPage = 2
	}
	endPage = currentPage + window
	if endPage > totalPages-1 {
		endPage = totalPages - 1
	}

	if currentPage <= 3 {
		startPage = 2
		endPage = totalPages - 1
		if endPage > 5 {
			endPage = 5
		}
	}
	if currentPage >= totalPages-2 {
		startPage = totalPages - 4
		if startPage < 2 {
			startPage = 2
		}
		endPage = totalPages - 1
	}

	return startPage, endPage
}
