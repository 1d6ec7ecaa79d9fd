package commands

// DecodeValue exposes decodeValue for testing.
var DecodeValue = decodeValue
