package machine

// InputID names one cabinet control. The Joust cab wires a coin door, a
// start button per player, and a two-way joystick plus a flap button per
// player, into the two PIAs' Port A input lines.
type InputID int

const (
	InputCoinDoor InputID = iota
	InputStart1
	InputStart2
	InputServiceReset
	InputP1Left
	InputP1Right
	InputP1Flap
	InputP2Left
	InputP2Right
	InputP2Flap
)

var inputLabels = map[InputID]string{
	InputCoinDoor:     "Coin door",
	InputStart1:       "1 Player start",
	InputStart2:       "2 Player start",
	InputServiceReset: "Service/self-test reset",
	InputP1Left:       "Player 1 left",
	InputP1Right:      "Player 1 right",
	InputP1Flap:       "Player 1 flap",
	InputP2Left:       "Player 2 left",
	InputP2Right:      "Player 2 right",
	InputP2Flap:       "Player 2 flap",
}

// pia1Bits and pia0Bits locate each input's active-high bit within its
// PIA's Port A input latch.
var pia1Bits = map[InputID]uint8{
	InputCoinDoor:     0,
	InputStart1:       1,
	InputStart2:       2,
	InputServiceReset: 3,
}

var pia0Bits = map[InputID]uint8{
	InputP1Left:  0,
	InputP1Right: 1,
	InputP1Flap:  2,
	InputP2Left:  3,
	InputP2Right: 4,
	InputP2Flap:  5,
}

// setBit sets or clears bit within reg, active-high: set on press, clear
// on release.
func setBit(reg *uint8, bit uint8, pressed bool) {
	if pressed {
		*reg |= 1 << bit
	} else {
		*reg &^= 1 << bit
	}
}

// InputMap reports every InputID this board accepts along with a
// human-readable label, for a host to build a control mapping UI from.
func (b *Board) InputMap() map[InputID]string {
	out := make(map[InputID]string, len(inputLabels))
	for id, label := range inputLabels {
		out[id] = label
	}
	return out
}

// SetInput routes a cabinet control's press/release state to the PIA
// input line the Joust wiring harness connects it to.
func (b *Board) SetInput(id InputID, pressed bool) {
	if bit, ok := pia1Bits[id]; ok {
		setBit(&b.pia1InputA, bit, pressed)
		b.pia1.SetPortAInput(b.pia1InputA)
		return
	}
	if bit, ok := pia0Bits[id]; ok {
		setBit(&b.pia0InputA, bit, pressed)
		b.pia0.SetPortAInput(b.pia0InputA)
	}
}
