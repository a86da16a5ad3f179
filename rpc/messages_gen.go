package rpc

// NOTE: THIS FILE WAS PRODUCED BY THE
// MSGP CODE GENERATION TOOL (github.com/tinylib/msgp)
// DO NOT EDIT

import (
	"github.com/tinylib/msgp/msgp"
)

// DecodeMsg implements msgp.Decodable
func (z *Params) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, err = dc.ReadMapHeader()
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "RunID":
			z.RunID, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "RunID")
				return
			}
		case "Version":
			z.Version, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Version")
				return
			}
		case "Input":
			z.Input, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "Input")
				return
			}
		case "Size":
			var zb0002 uint32
			zb0002, err = dc.ReadArrayHeader()
			if err != nil {
				err = msgp.WrapError(err, "Size")
				return
			}
			if zb0002 != uint32(3) {
				err = msgp.ArrayError{Wanted: uint32(3), Got: zb0002}
				return
			}
			for za0001 := range z.Size {
				z.Size[za0001], err = dc.ReadInt32()
				if err != nil {
					err = msgp.WrapError(err, "Size", za0001)
					return
				}
			}
		case "Threshold":
			z.Threshold, err = dc.ReadUint8()
			if err != nil {
				err = msgp.WrapError(err, "Threshold")
				return
			}
		case "Cube":
			z.Cube, err = dc.ReadInt32()
			if err != nil {
				err = msgp.WrapError(err, "Cube")
				return
			}
		case "Buckets":
			z.Buckets, err = dc.ReadInt()
			if err != nil {
				err = msgp.WrapError(err, "Buckets")
				return
			}
		case "Processes":
			z.Processes, err = dc.ReadInt()
			if err != nil {
				err = msgp.WrapError(err, "Processes")
				return
			}
		case "MaxMemory":
			z.MaxMemory, err = dc.ReadUint64()
			if err != nil {
				err = msgp.WrapError(err, "MaxMemory")
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *Params) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 9
	// write "RunID"
	err = en.Append(0x89, 0xa5, 0x52, 0x75, 0x6e, 0x49, 0x44)
	if err != nil {
		return
	}
	err = en.WriteString(z.RunID)
	if err != nil {
		err = msgp.WrapError(err, "RunID")
		return
	}
	// write "Version"
	err = en.Append(0xa7, 0x56, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e)
	if err != nil {
		return
	}
	err = en.WriteString(z.Version)
	if err != nil {
		err = msgp.WrapError(err, "Version")
		return
	}
	// write "Input"
	err = en.Append(0xa5, 0x49, 0x6e, 0x70, 0x75, 0x74)
	if err != nil {
		return
	}
	err = en.WriteString(z.Input)
	if err != nil {
		err = msgp.WrapError(err, "Input")
		return
	}
	// write "Size"
	err = en.Append(0xa4, 0x53, 0x69, 0x7a, 0x65)
	if err != nil {
		return
	}
	err = en.WriteArrayHeader(uint32(3))
	if err != nil {
		err = msgp.WrapError(err, "Size")
		return
	}
	for za0001 := range z.Size {
		err = en.WriteInt32(z.Size[za0001])
		if err != nil {
			err = msgp.WrapError(err, "Size", za0001)
			return
		}
	}
	// write "Threshold"
	err = en.Append(0xa9, 0x54, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64)
	if err != nil {
		return
	}
	err = en.WriteUint8(z.Threshold)
	if err != nil {
		err = msgp.WrapError(err, "Threshold")
		return
	}
	// write "Cube"
	err = en.Append(0xa4, 0x43, 0x75, 0x62, 0x65)
	if err != nil {
		return
	}
	err = en.WriteInt32(z.Cube)
	if err != nil {
		err = msgp.WrapError(err, "Cube")
		return
	}
	// write "Buckets"
	err = en.Append(0xa7, 0x42, 0x75, 0x63, 0x6b, 0x65, 0x74, 0x73)
	if err != nil {
		return
	}
	err = en.WriteInt(z.Buckets)
	if err != nil {
		err = msgp.WrapError(err, "Buckets")
		return
	}
	// write "Processes"
	err = en.Append(0xa9, 0x50, 0x72, 0x6f, 0x63, 0x65, 0x73, 0x73, 0x65, 0x73)
	if err != nil {
		return
	}
	err = en.WriteInt(z.Processes)
	if err != nil {
		err = msgp.WrapError(err, "Processes")
		return
	}
	// write "MaxMemory"
	err = en.Append(0xa9, 0x4d, 0x61, 0x78, 0x4d, 0x65, 0x6d, 0x6f, 0x72, 0x79)
	if err != nil {
		return
	}
	err = en.WriteUint64(z.MaxMemory)
	if err != nil {
		err = msgp.WrapError(err, "MaxMemory")
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *Params) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 9
	// string "RunID"
	o = append(o, 0x89, 0xa5, 0x52, 0x75, 0x6e, 0x49, 0x44)
	o = msgp.AppendString(o, z.RunID)
	// string "Version"
	o = append(o, 0xa7, 0x56, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e)
	o = msgp.AppendString(o, z.Version)
	// string "Input"
	o = append(o, 0xa5, 0x49, 0x6e, 0x70, 0x75, 0x74)
	o = msgp.AppendString(o, z.Input)
	// string "Size"
	o = append(o, 0xa4, 0x53, 0x69, 0x7a, 0x65)
	o = msgp.AppendArrayHeader(o, uint32(3))
	for za0001 := range z.Size {
		o = msgp.AppendInt32(o, z.Size[za0001])
	}
	// string "Threshold"
	o = append(o, 0xa9, 0x54, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64)
	o = msgp.AppendUint8(o, z.Threshold)
	// string "Cube"
	o = append(o, 0xa4, 0x43, 0x75, 0x62, 0x65)
	o = msgp.AppendInt32(o, z.Cube)
	// string "Buckets"
	o = append(o, 0xa7, 0x42, 0x75, 0x63, 0x6b, 0x65, 0x74, 0x73)
	o = msgp.AppendInt(o, z.Buckets)
	// string "Processes"
	o = append(o, 0xa9, 0x50, 0x72, 0x6f, 0x63, 0x65, 0x73, 0x73, 0x65, 0x73)
	o = msgp.AppendInt(o, z.Processes)
	// string "MaxMemory"
	o = append(o, 0xa9, 0x4d, 0x61, 0x78, 0x4d, 0x65, 0x6d, 0x6f, 0x72, 0x79)
	o = msgp.AppendUint64(o, z.MaxMemory)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Params) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "RunID":
			z.RunID, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "RunID")
				return
			}
		case "Version":
			z.Version, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Version")
				return
			}
		case "Input":
			z.Input, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Input")
				return
			}
		case "Size":
			var zb0002 uint32
			zb0002, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Size")
				return
			}
			if zb0002 != uint32(3) {
				err = msgp.ArrayError{Wanted: uint32(3), Got: zb0002}
				return
			}
			for za0001 := range z.Size {
				z.Size[za0001], bts, err = msgp.ReadInt32Bytes(bts)
				if err != nil {
					err = msgp.WrapError(err, "Size", za0001)
					return
				}
			}
		case "Threshold":
			z.Threshold, bts, err = msgp.ReadUint8Bytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Threshold")
				return
			}
		case "Cube":
			z.Cube, bts, err = msgp.ReadInt32Bytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Cube")
				return
			}
		case "Buckets":
			z.Buckets, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Buckets")
				return
			}
		case "Processes":
			z.Processes, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Processes")
				return
			}
		case "MaxMemory":
			z.MaxMemory, bts, err = msgp.ReadUint64Bytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "MaxMemory")
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Params) Msgsize() (s int) {
	s = 1 + 6 + msgp.StringPrefixSize + len(z.RunID) + 8 + msgp.StringPrefixSize + len(z.Version) + 6 + msgp.StringPrefixSize + len(z.Input) + 5 + msgp.ArrayHeaderSize + (3 * (msgp.Int32Size)) + 10 + msgp.Uint8Size + 5 + msgp.Int32Size + 8 + msgp.IntSize + 10 + msgp.IntSize + 10 + msgp.Uint64Size
	return
}

// DecodeMsg implements msgp.Decodable
func (z *Report) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, err = dc.ReadMapHeader()
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "RunID":
			z.RunID, err = dc.ReadString()
			if err != nil {
				err = msgp.WrapError(err, "RunID")
				return
			}
		case "Rank":
			z.Rank, err = dc.ReadInt()
			if err != nil {
				err = msgp.WrapError(err, "Rank")
				return
			}
		case "Pairs":
			z.Pairs, err = dc.ReadUint64()
			if err != nil {
				err = msgp.WrapError(err, "Pairs")
				return
			}
		case "Blocks":
			z.Blocks, err = dc.ReadInt()
			if err != nil {
				err = msgp.WrapError(err, "Blocks")
				return
			}
		case "Unique":
			z.Unique, err = dc.ReadInt()
			if err != nil {
				err = msgp.WrapError(err, "Unique")
				return
			}
		case "LedgerBytes":
			z.LedgerBytes, err = dc.ReadInt()
			if err != nil {
				err = msgp.WrapError(err, "LedgerBytes")
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *Report) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 6
	// write "RunID"
	err = en.Append(0x86, 0xa5, 0x52, 0x75, 0x6e, 0x49, 0x44)
	if err != nil {
		return
	}
	err = en.WriteString(z.RunID)
	if err != nil {
		err = msgp.WrapError(err, "RunID")
		return
	}
	// write "Rank"
	err = en.Append(0xa4, 0x52, 0x61, 0x6e, 0x6b)
	if err != nil {
		return
	}
	err = en.WriteInt(z.Rank)
	if err != nil {
		err = msgp.WrapError(err, "Rank")
		return
	}
	// write "Pairs"
	err = en.Append(0xa5, 0x50, 0x61, 0x69, 0x72, 0x73)
	if err != nil {
		return
	}
	err = en.WriteUint64(z.Pairs)
	if err != nil {
		err = msgp.WrapError(err, "Pairs")
		return
	}
	// write "Blocks"
	err = en.Append(0xa6, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x73)
	if err != nil {
		return
	}
	err = en.WriteInt(z.Blocks)
	if err != nil {
		err = msgp.WrapError(err, "Blocks")
		return
	}
	// write "Unique"
	err = en.Append(0xa6, 0x55, 0x6e, 0x69, 0x71, 0x75, 0x65)
	if err != nil {
		return
	}
	err = en.WriteInt(z.Unique)
	if err != nil {
		err = msgp.WrapError(err, "Unique")
		return
	}
	// write "LedgerBytes"
	err = en.Append(0xab, 0x4c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x42, 0x79, 0x74, 0x65, 0x73)
	if err != nil {
		return
	}
	err = en.WriteInt(z.LedgerBytes)
	if err != nil {
		err = msgp.WrapError(err, "LedgerBytes")
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *Report) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 6
	// string "RunID"
	o = append(o, 0x86, 0xa5, 0x52, 0x75, 0x6e, 0x49, 0x44)
	o = msgp.AppendString(o, z.RunID)
	// string "Rank"
	o = append(o, 0xa4, 0x52, 0x61, 0x6e, 0x6b)
	o = msgp.AppendInt(o, z.Rank)
	// string "Pairs"
	o = append(o, 0xa5, 0x50, 0x61, 0x69, 0x72, 0x73)
	o = msgp.AppendUint64(o, z.Pairs)
	// string "Blocks"
	o = append(o, 0xa6, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x73)
	o = msgp.AppendInt(o, z.Blocks)
	// string "Unique"
	o = append(o, 0xa6, 0x55, 0x6e, 0x69, 0x71, 0x75, 0x65)
	o = msgp.AppendInt(o, z.Unique)
	// string "LedgerBytes"
	o = append(o, 0xab, 0x4c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x42, 0x79, 0x74, 0x65, 0x73)
	o = msgp.AppendInt(o, z.LedgerBytes)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Report) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "RunID":
			z.RunID, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "RunID")
				return
			}
		case "Rank":
			z.Rank, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Rank")
				return
			}
		case "Pairs":
			z.Pairs, bts, err = msgp.ReadUint64Bytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Pairs")
				return
			}
		case "Blocks":
			z.Blocks, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Blocks")
				return
			}
		case "Unique":
			z.Unique, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Unique")
				return
			}
		case "LedgerBytes":
			z.LedgerBytes, bts, err = msgp.ReadIntBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "LedgerBytes")
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Report) Msgsize() (s int) {
	s = 1 + 6 + msgp.StringPrefixSize + len(z.RunID) + 5 + msgp.IntSize + 6 + msgp.Uint64Size + 7 + msgp.IntSize + 7 + msgp.IntSize + 12 + msgp.IntSize
	return
}
