package replay

import (
	"google.golang.org/protobuf/encoding/protowire"

	"supersnake/internal/domain"
)

// Field numbers of the replay message.
const (
	fieldConfig protowire.Number = 1
	fieldInputs protowire.Number = 2
	fieldPoints protowire.Number = 3
	fieldTicks  protowire.Number = 4
)

// Field numbers of the embedded config message.
const (
	fieldWidth            protowire.Number = 1
	fieldHeight           protowire.Number = 2
	fieldCellSize         protowire.Number = 3
	fieldInitialCellCount protowire.Number = 4
	fieldHeadColor        protowire.Number = 5
	fieldSnakeColor       protowire.Number = 6
	fieldPointColor       protowire.Number = 7
	fieldBackgroundColor  protowire.Number = 8
	fieldSeed             protowire.Number = 9
)

func Marshal(r *Replay) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldConfig, protowire.BytesType)
	b = protowire.AppendBytes(b, marshalConfig(&r.Config))

	if len(r.Inputs) > 0 {
		packed := make([]byte, 0, len(r.Inputs))
		for _, in := range r.Inputs {
			packed = protowire.AppendVarint(packed, uint64(in))
		}
		b = protowire.AppendTag(b, fieldInputs, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}

	b = appendInt(b, fieldPoints, r.Points)
	b = appendInt(b, fieldTicks, r.Ticks)
	return b
}

func marshalConfig(c *domain.GameConfig) []byte {
	var b []byte
	b = appendInt(b, fieldWidth, c.Width)
	b = appendInt(b, fieldHeight, c.Height)
	b = appendInt(b, fieldCellSize, c.CellSize)
	b = appendInt(b, fieldInitialCellCount, c.InitialCellCount)
	b = appendColor(b, fieldHeadColor, c.HeadColor)
	b = appendColor(b, fieldSnakeColor, c.SnakeColor)
	b = appendColor(b, fieldPointColor, c.PointColor)
	b = appendColor(b, fieldBackgroundColor, c.BackgroundColor)
	b = protowire.AppendTag(b, fieldSeed, protowire.VarintType)
	b = protowire.AppendVarint(b, c.Seed)
	return b
}

// appendInt writes a sint64 so negative values stay small.
func appendInt(b []byte, num protowire.Number, v int) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
}

func appendColor(b []byte, num protowire.Number, c domain.Color) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, c.Pixel())
}
