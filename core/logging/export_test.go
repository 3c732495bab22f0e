package logging

var NewEncoderForTest = newEncoder
