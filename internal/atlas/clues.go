package atlas

import "fmt"

// ClueType identifies the kind of hint payload shown at round start.
type ClueType string

const (
	// ClueCapital names the target's capital city.
	ClueCapital ClueType = "capital"
	// ClueFlag tells the client to render the target's flag asset.
	ClueFlag ClueType = "flag"
	// ClueShape tells the client to render the target's outline.
	ClueShape ClueType = "shape"
	// ClueTrivia is a one-line fact about the target.
	ClueTrivia ClueType = "trivia"
	// ClueArea names a sub-national area directly (region rounds).
	ClueArea ClueType = "area"
)

// clueTypeOrder fixes candidate ordering so seeded clue selection is
// reproducible across processes.
var clueTypeOrder = []ClueType{ClueCapital, ClueFlag, ClueShape, ClueTrivia}

// Clue is the round-start hint payload. Text is empty for asset-backed
// clue types (flag, shape); the client resolves those from TargetCode.
type Clue struct {
	Type       ClueType `json:"type"`
	TargetCode string   `json:"target_code"`
	Text       string   `json:"text,omitempty"`
}

// CluesFor returns the candidate clues available for a country target,
// restricted to allowed types (nil allows everything). Candidates come
// back in a fixed order. Unknown codes yield no candidates.
func (a *Atlas) CluesFor(code string, allowed []ClueType) []Clue {
	t, ok := a.targets[code]
	if !ok {
		return nil
	}

	permitted := func(ct ClueType) bool {
		if len(allowed) == 0 {
			return true
		}
		for _, x := range allowed {
			if x == ct {
				return true
			}
		}
		return false
	}

	var out []Clue
	for _, ct := range clueTypeOrder {
		if !permitted(ct) {
			continue
		}
		switch ct {
		case ClueCapital:
			if name, ok := capitalNames[t.Code]; ok {
				out = append(out, Clue{
					Type:       ClueCapital,
					TargetCode: t.Code,
					Text:       fmt.Sprintf("Its capital city is %s", name),
				})
			}
		case ClueFlag:
			out = append(out, Clue{Type: ClueFlag, TargetCode: t.Code})
		case ClueShape:
			out = append(out, Clue{Type: ClueShape, TargetCode: t.Code})
		case ClueTrivia:
			if fact, ok := trivia[t.Code]; ok {
				out = append(out, Clue{Type: ClueTrivia, TargetCode: t.Code, Text: fact})
			}
		}
	}
	return out
}

// AreaClue builds the clue for a region round, which names the area
// outright: the challenge is navigation, not identification.
func AreaClue(area Target) Clue {
	return Clue{
		Type:       ClueArea,
		TargetCode: area.Code,
		Text:       fmt.Sprintf("Fly to %s", area.Name),
	}
}
