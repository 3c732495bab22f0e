package awdl

import (
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/an"
	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
	"go.uber.org/zap"
)

type codec struct {
	minLength int
	maxLength int // 0 means unbounded
	make      func() payload
}

// codecs maps each known type code to its payload codec.
var codecs map[an.TlvType]codec

func init() {
	codecs = map[an.TlvType]codec{
		an.TtServiceResponse:           {serviceResponseMinLen, 0, func() payload { return new(ServiceResponse) }},
		an.TtSynchronizationParameters: {syncParamsMinLen, 0, func() payload { return new(SynchronizationParameters) }},
		an.TtElectionParameters:        {electionLen, electionLen, func() payload { return new(ElectionParameters) }},
		an.TtServiceParameters:         {serviceParamsMinLen, 0, func() payload { return new(ServiceParameters) }},
		an.TtHTCapabilities:            {htCapabilitiesMinLen, 0, func() payload { return new(HTCapabilities) }},
		an.TtDataPathState:             {dataPathStateMinLen, 0, func() payload { return new(DataPathState) }},
		an.TtArpa:                      {arpaMinLen, 0, func() payload { return new(Arpa) }},
		an.TtVHTCapabilities:           {ieee80211ContainerMinLen, 0, func() payload { return new(IEEE80211Container) }},
		an.TtChannelSequence:           {channelSequenceMinLen, 0, func() payload { return new(ChannelSequence) }},
		an.TtSynchronizationTree:       {0, 0, func() payload { return new(SynchronizationTree) }},
		an.TtVersion:                   {versionLen, versionLen, func() payload { return new(Version) }},
		an.TtElectionParametersV2:      {electionV2Len, electionV2Len, func() payload { return new(ElectionParametersV2) }},
	}
}

// checkElement validates TLV-TYPE and TLV-LENGTH against the codec table,
// and returns a Reader over the TLV-VALUE.
func checkElement(want, typ an.TlvType, value []byte) (*tlv.Reader, error) {
	if typ != want {
		return nil, fmt.Errorf("%s is not %s: %w", typ, want, tlv.ErrIncorrectTlvType)
	}
	c := codecs[want]
	if len(value) < c.minLength || (c.maxLength > 0 && len(value) > c.maxLength) {
		return nil, fmt.Errorf("%s TLV-LENGTH %d: %w", want, len(value), tlv.ErrIncorrectTlvLength)
	}
	return tlv.NewReader(value), nil
}

// expectEOF reports unconsumed octets after a payload as a length error.
func expectEOF(typ an.TlvType, r *tlv.Reader) error {
	if e := r.Err(); e != nil {
		return e
	}
	if r.Len() > 0 {
		return fmt.Errorf("%s has %d trailing octets: %w", typ, r.Len(), tlv.ErrIncorrectTlvLength)
	}
	return nil
}

// DecodeOptions contains options for decoding TLVs.
type DecodeOptions struct {
	// Lenient keeps a known TLV whose payload fails to decode as *Unknown, instead of failing.
	Lenient bool
}

// DecodeTLV converts a raw element to its typed variant.
// Unrecognized type codes become *Unknown; they are not errors.
func (opts DecodeOptions) DecodeTLV(element tlv.Element) (TLV, error) {
	c, ok := codecs[element.Type]
	if !ok {
		u := &Unknown{}
		u.UnmarshalTLV(element.Type, element.Value)
		return u, nil
	}

	p := c.make()
	if e := p.UnmarshalTLV(element.Type, element.Value); e != nil {
		if !opts.Lenient {
			return nil, fmt.Errorf("%s: %w", element.Type, e)
		}
		logger.Debug("keeping undecodable TLV as Unknown",
			zap.Stringer("type", element.Type),
			zap.Int("length", element.Length()),
			zap.Error(e),
		)
		u := &Unknown{}
		u.UnmarshalTLV(element.Type, element.Value)
		return u, nil
	}
	return p, nil
}

// DecodeTLV converts a raw element to its typed variant, in strict mode.
func DecodeTLV(element tlv.Element) (TLV, error) {
	return DecodeOptions{}.DecodeTLV(element)
}
