package orchard

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ccoin/orchard/pkg/common"
)

// NumPublicInputs is the fixed width of the public-input vector (§3).
const NumPublicInputs = 9

// Instance is the Action circuit's public input: the nine externally
// visible field elements of §3, grouped by the value they describe.
type Instance struct {
	Anchor       fr.Element
	CvNetX       fr.Element
	CvNetY       fr.Element
	NfOld        fr.Element
	RkX          fr.Element
	RkY          fr.Element
	Cmx          fr.Element
	EnableSpend  bool
	EnableOutput bool
}

// boolToField converts a boolean flag to its 0/1 field encoding.
func boolToField(b bool) fr.Element {
	var f fr.Element
	if b {
		f.SetOne()
	}
	return f
}

// Pack flattens the instance into the nine-element public-input
// vector, at the offsets the §3 table fixes.
func (in Instance) Pack() [NumPublicInputs]fr.Element {
	return [NumPublicInputs]fr.Element{
		in.Anchor,
		in.CvNetX,
		in.CvNetY,
		in.NfOld,
		in.RkX,
		in.RkY,
		in.Cmx,
		boolToField(in.EnableSpend),
		boolToField(in.EnableOutput),
	}
}

// instanceFieldCount is the number of 32-byte field slots the instance
// byte encoding carries (anchor, cv_net_x, cv_net_y, nf_old, rk_x,
// rk_y, cmx). §6.1 specifies cv_net and rk as single 32-byte
// "compressed point" entries; the BN254 substitution has no defined
// point-compression convention of its own (see DESIGN.md, "instance
// byte layout"), so each coordinate is instead encoded as its own
// 32-byte canonical field element, and the two trailing boolean bytes
// are unchanged.
const instanceFieldCount = 7

// InstanceByteLen is the encoded length of an Instance: seven 32-byte
// canonical field elements plus two boolean bytes.
const InstanceByteLen = instanceFieldCount*common.HashSize + 2

// Bytes encodes the instance per the layout above.
func (in Instance) Bytes() []byte {
	out := make([]byte, 0, InstanceByteLen)
	fields := [instanceFieldCount]fr.Element{in.Anchor, in.CvNetX, in.CvNetY, in.NfOld, in.RkX, in.RkY, in.Cmx}
	for _, f := range fields {
		b := f.Bytes()
		out = append(out, b[:]...)
	}
	out = append(out, encodeBool(in.EnableSpend), encodeBool(in.EnableOutput))
	return out
}

func encodeBool(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}

func decodeBool(b byte) (bool, error) {
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, common.ErrInvalidBool
	}
}

// InstanceFromBytes decodes an instance from its byte encoding,
// returning the number of bytes consumed (exactly InstanceByteLen) so
// callers can locate the proof bytes that follow (§6.1).
func InstanceFromBytes(b []byte) (Instance, int, error) {
	if len(b) < InstanceByteLen {
		return Instance{}, 0, ErrInstanceEncoding
	}

	var in Instance
	fields := make([]*fr.Element, instanceFieldCount)
	fields[0], fields[1], fields[2] = &in.Anchor, &in.CvNetX, &in.CvNetY
	fields[3], fields[4], fields[5] = &in.NfOld, &in.RkX, &in.RkY
	fields[6] = &in.Cmx

	offset := 0
	for _, f := range fields {
		var buf [common.HashSize]byte
		copy(buf[:], b[offset:offset+common.HashSize])
		f.SetBytes(buf[:])
		offset += common.HashSize
	}

	spend, err := decodeBool(b[offset])
	if err != nil {
		return Instance{}, 0, err
	}
	output, err := decodeBool(b[offset+1])
	if err != nil {
		return Instance{}, 0, err
	}
	in.EnableSpend = spend
	in.EnableOutput = output

	return in, offset + 2, nil
}
