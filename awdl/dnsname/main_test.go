package dnsname_test

import (
	"github.com/Frostie314159/awdl-frame-parser/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)
