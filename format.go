package wavpcm

import "fmt"

// AudioFormat is the codec tag stored in the fmt chunk.
type AudioFormat uint16

// Known WAVE format tags. Only FormatPCM can be decoded.
const (
	FormatUnknown       AudioFormat = 0x0000
	FormatPCM           AudioFormat = 0x0001
	FormatADPCM         AudioFormat = 0x0002
	FormatIEEEFloat     AudioFormat = 0x0003
	FormatALaw          AudioFormat = 0x0006
	FormatMuLaw         AudioFormat = 0x0007
	FormatDTSMS         AudioFormat = 0x0008
	FormatWMAS          AudioFormat = 0x000a
	FormatIMAADPCM      AudioFormat = 0x0011
	FormatTrueSpeech    AudioFormat = 0x0022
	FormatGSM610        AudioFormat = 0x0031
	FormatMSNAudio      AudioFormat = 0x0032
	FormatG726          AudioFormat = 0x0045
	FormatMPEG          AudioFormat = 0x0050
	FormatMPEGLayer3    AudioFormat = 0x0055
	FormatDolbyAC3SPDIF AudioFormat = 0x0092
)

var formatNames = map[AudioFormat]string{
	FormatUnknown:       "Unknown",
	FormatPCM:           "PCM",
	FormatADPCM:         "ADPCM",
	FormatIEEEFloat:     "IEEE Float",
	FormatALaw:          "A-law",
	FormatMuLaw:         "mu-law",
	FormatDTSMS:         "DTS",
	FormatWMAS:          "WMA Speech",
	FormatIMAADPCM:      "IMA ADPCM",
	FormatTrueSpeech:    "TrueSpeech",
	FormatGSM610:        "GSM 6.10",
	FormatMSNAudio:      "MSN Audio",
	FormatG726:          "G.726",
	FormatMPEG:          "MPEG",
	FormatMPEGLayer3:    "MPEG Layer 3",
	FormatDolbyAC3SPDIF: "Dolby AC3 SPDIF",
}

// String implements the Stringer interface.
func (f AudioFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("format tag 0x%04x", uint16(f))
}
