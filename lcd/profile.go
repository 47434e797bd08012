package lcd

import "time"

// ST7735S command set.
const (
	CmdSWRESET = 0x01
	CmdSLPIN   = 0x10
	CmdSLPOUT  = 0x11
	CmdINVOFF  = 0x20
	CmdINVON   = 0x21
	CmdGAMSET  = 0x26
	CmdDISPOFF = 0x28
	CmdDISPON  = 0x29
	CmdCASET   = 0x2A
	CmdRASET   = 0x2B
	CmdRAMWR   = 0x2C
	CmdTEOFF   = 0x34
	CmdMADCTL  = 0x36
	CmdCOLMOD  = 0x3A
	CmdFRMCTR1 = 0xB1
	CmdPWCTR1  = 0xC0
	CmdPWCTR2  = 0xC1
	CmdPWCTR3  = 0xC2
	CmdPWCTR4  = 0xC3
	CmdPWCTR5  = 0xC4
)

// MADCTL bits.
const (
	MadctlMY  = 0x80
	MadctlMX  = 0x40
	MadctlMV  = 0x20
	MadctlML  = 0x10
	MadctlBGR = 0x08
	MadctlMH  = 0x04
)

// ColorMode18 is the COLMOD value for 18 bits per pixel.
const ColorMode18 = 0x06

// Step is one command of a panel init sequence, followed by Delay.
type Step struct {
	Cmd   byte
	Data  []byte
	Delay time.Duration
}

// Profile describes a panel: visible size, the RAM coordinate of the
// visible area's top-left pixel, and the power-up command sequence.
type Profile struct {
	Width, Height int

	ColumnOffset int
	RowOffset    int

	Init []Step
}

// ST7735S returns the profile of the 132x132 1.44" module.
func ST7735S() *Profile {
	return &Profile{
		Width:  132,
		Height: 132,
		Init: []Step{
			{Cmd: CmdSWRESET, Delay: 150 * time.Millisecond},
			{Cmd: CmdSLPOUT, Delay: 150 * time.Millisecond},
			{Cmd: CmdFRMCTR1, Data: []byte{0x00, 0x06, 0x03}},
			{Cmd: CmdPWCTR1, Data: []byte{0xA2, 0x02, 0x84}},
			{Cmd: CmdPWCTR2, Data: []byte{0xC5}},
			{Cmd: CmdPWCTR3, Data: []byte{0x0A, 0x00}},
			{Cmd: CmdPWCTR4, Data: []byte{0x8A, 0x2A}},
			{Cmd: CmdPWCTR5, Data: []byte{0xEE, 0x8A}},
			{Cmd: CmdMADCTL, Data: []byte{MadctlMY | MadctlMX | MadctlBGR}},
			{Cmd: CmdCOLMOD, Data: []byte{ColorMode18}, Delay: 10 * time.Millisecond},
			{Cmd: CmdINVOFF},
			{Cmd: CmdGAMSET, Data: []byte{0x08}},
			{Cmd: CmdTEOFF},
			{Cmd: CmdDISPON, Delay: 150 * time.Millisecond},
		},
	}
}
