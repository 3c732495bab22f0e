// Package an contains AWDL assigned numbers.
package an

import "strconv"

// TlvType is an AWDL TLV type code.
type TlvType uint8

// TLV type assigned numbers.
const (
	TtServiceResponse           TlvType = 0x02
	TtSynchronizationParameters TlvType = 0x04
	TtElectionParameters        TlvType = 0x05
	TtServiceParameters         TlvType = 0x06
	TtHTCapabilities            TlvType = 0x07
	TtDataPathState             TlvType = 0x0C
	TtArpa                      TlvType = 0x10
	TtVHTCapabilities           TlvType = 0x11
	TtChannelSequence           TlvType = 0x12
	TtSynchronizationTree       TlvType = 0x14
	TtVersion                   TlvType = 0x15
	TtElectionParametersV2      TlvType = 0x18
)

var tlvTypeStrings = map[TlvType]string{
	TtServiceResponse:           "ServiceResponse",
	TtSynchronizationParameters: "SynchronizationParameters",
	TtElectionParameters:        "ElectionParameters",
	TtServiceParameters:         "ServiceParameters",
	TtHTCapabilities:            "HTCapabilities",
	TtDataPathState:             "DataPathState",
	TtArpa:                      "Arpa",
	TtVHTCapabilities:           "VHTCapabilities",
	TtChannelSequence:           "ChannelSequence",
	TtSynchronizationTree:       "SynchronizationTree",
	TtVersion:                   "Version",
	TtElectionParametersV2:      "ElectionParametersV2",
}

// Known returns true if the type code has an assigned meaning.
func (tt TlvType) Known() bool {
	_, ok := tlvTypeStrings[tt]
	return ok
}

func (tt TlvType) String() string {
	if s, ok := tlvTypeStrings[tt]; ok {
		return s
	}
	return "Unknown(" + strconv.Itoa(int(tt)) + ")"
}
