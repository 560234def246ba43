package packet

// Encode writes the wire form of p into buf and returns the number of bytes
// written. The destination capacity is checked up front: a buf shorter than
// p.EncodedSize() fails with ErrWriteZero before anything is written.
// Field values that cannot be represented on the wire (a length-prefixed
// field over 65535 bytes, a total body over MaxRemainingLength) fail with
// ErrInvalidLength, and a zero packet identifier with ErrInvalidPid.
func Encode(p Packet, buf []byte) (int, error) {
	if err := validate(p); err != nil {
		return 0, err
	}

	rl := p.remainingLength()
	if rl > MaxRemainingLength {
		return 0, ErrInvalidLength
	}
	total := fixedHeaderSize(rl) + rl
	if len(buf) < total {
		return 0, ErrWriteZero
	}

	pos := encodeFixedHeader(buf, p.Type(), p.flags(), rl)
	pos += p.encodeBody(buf[pos:])
	return pos, nil
}

// validate rejects packets whose field values have no legal wire form.
// Decoded packets always pass; this catches hand-built ones.
func validate(p Packet) error {
	switch p := p.(type) {
	case *Connect:
		if err := checkStringLen(p.ClientID); err != nil {
			return err
		}
		if p.LastWill != nil {
			if err := checkFieldLens(p.LastWill.Topic, p.LastWill.Message); err != nil {
				return err
			}
			if !p.LastWill.QoS.Valid() {
				return invalidQoS(byte(p.LastWill.QoS))
			}
		}
		if p.Username != nil {
			if err := checkStringLen(*p.Username); err != nil {
				return err
			}
		}
		if p.Password != nil && len(p.Password) > 0xFFFF {
			return ErrInvalidLength
		}
	case *Connack:
		if !p.Code.Valid() {
			return invalidConnectReturnCode(byte(p.Code))
		}
	case *Publish:
		if err := checkStringLen(p.Topic); err != nil {
			return err
		}
		if pid, ok := p.QosPid.Pid(); ok && pid == 0 {
			return ErrInvalidPid
		}
	case *Puback:
		return checkPid(p.Pid)
	case *Pubrec:
		return checkPid(p.Pid)
	case *Pubrel:
		return checkPid(p.Pid)
	case *Pubcomp:
		return checkPid(p.Pid)
	case *Unsuback:
		return checkPid(p.Pid)
	case *Subscribe:
		if err := checkPid(p.Pid); err != nil {
			return err
		}
		for _, t := range p.Topics {
			if err := checkStringLen(t.TopicFilter); err != nil {
				return err
			}
			if !t.QoS.Valid() {
				return invalidQoS(byte(t.QoS))
			}
		}
	case *Suback:
		if err := checkPid(p.Pid); err != nil {
			return err
		}
		for _, c := range p.ReturnCodes {
			if !c.Failure && !c.QoS.Valid() {
				return invalidQoS(byte(c.QoS))
			}
		}
	case *Unsubscribe:
		if err := checkPid(p.Pid); err != nil {
			return err
		}
		for _, t := range p.Topics {
			if err := checkStringLen(t); err != nil {
				return err
			}
		}
	case *Pingreq, *Pingresp, *Disconnect:
		// Nothing to validate.
	}
	return nil
}

func checkPid(pid Pid) error {
	if pid == 0 {
		return ErrInvalidPid
	}
	return nil
}

func checkStringLen(s string) error {
	if len(s) > 0xFFFF {
		return ErrInvalidLength
	}
	return nil
}

func checkFieldLens(s string, b []byte) error {
	if err := checkStringLen(s); err != nil {
		return err
	}
	if len(b) > 0xFFFF {
		return ErrInvalidLength
	}
	return nil
}
