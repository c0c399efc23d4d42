package replay

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"supersnake/internal/domain"
)

var ErrMalformed = errors.New("malformed replay")

// Unmarshal parses a replay written by Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (*Replay, error) {
	r := &Replay{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, wireError(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldConfig && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			if err := unmarshalConfig(v, &r.Config); err != nil {
				return nil, err
			}
			b = b[n:]

		case num == fieldInputs && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			inputs, err := unmarshalInputs(v)
			if err != nil {
				return nil, err
			}
			r.Inputs = append(r.Inputs, inputs...)
			b = b[n:]

		case num == fieldPoints && typ == protowire.VarintType:
			v, n, err := consumeInt(b)
			if err != nil {
				return nil, err
			}
			r.Points = v
			b = b[n:]

		case num == fieldTicks && typ == protowire.VarintType:
			v, n, err := consumeInt(b)
			if err != nil {
				return nil, err
			}
			r.Ticks = v
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return r, nil
}

func unmarshalConfig(b []byte, c *domain.GameConfig) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return wireError(protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			if num == fieldSeed {
				v, n := protowire.ConsumeVarint(b)
				if n < 0 {
					return wireError(protowire.ParseError(n))
				}
				c.Seed = v
				b = b[n:]
				continue
			}
			v, n, err := consumeInt(b)
			if err != nil {
				return err
			}
			switch num {
			case fieldWidth:
				c.Width = v
			case fieldHeight:
				c.Height = v
			case fieldCellSize:
				c.CellSize = v
			case fieldInitialCellCount:
				c.InitialCellCount = v
			}
			b = b[n:]

		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return wireError(protowire.ParseError(n))
			}
			color := domain.ColorFromPixel(v)
			switch num {
			case fieldHeadColor:
				c.HeadColor = color
			case fieldSnakeColor:
				c.SnakeColor = color
			case fieldPointColor:
				c.PointColor = color
			case fieldBackgroundColor:
				c.BackgroundColor = color
			}
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return wireError(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}

func unmarshalInputs(b []byte) ([]domain.Input, error) {
	inputs := make([]domain.Input, 0, len(b))
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, wireError(protowire.ParseError(n))
		}
		if v > uint64(domain.InputRight) {
			return nil, fmt.Errorf("%w: unknown input %d", ErrMalformed, v)
		}
		inputs = append(inputs, domain.Input(v))
		b = b[n:]
	}
	return inputs, nil
}

func consumeInt(b []byte) (int, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, wireError(protowire.ParseError(n))
	}
	x := protowire.DecodeZigZag(v)
	if x > math.MaxInt32 || x < math.MinInt32 {
		return 0, 0, fmt.Errorf("%w: value %d out of range", ErrMalformed, x)
	}
	return int(x), n, nil
}

func wireError(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}
