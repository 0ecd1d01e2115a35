package terminal

// parseKittyReply scans terminal replies for the answer to a kitty keyboard
// query (CSI ? flags u) or a primary device attributes report
// (CSI ? ... c). done is false until one of them is complete.
func parseKittyReply(b []byte) (supported, done bool) {
	for i := 0; i+2 < len(b); i++ {
		if b[i] != 0x1b || b[i+1] != '[' || b[i+2] != '?' {
			continue
		}
		p := i + 3
		digits := false
		for p < len(b) && (b[p] >= '0' && b[p] <= '9' || b[p] == ';') {
			digits = true
			p++
		}
		if !digits || p >= len(b) {
			continue
		}
		switch b[p] {
		case 'u':
			return true, true
		case 'c':
			return false, true
		}
	}
	return false, false
}
