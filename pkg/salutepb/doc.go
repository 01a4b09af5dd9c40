// Package salutepb holds the generated SaluteSpeech v2 wire contract.
//
// The recognition and synthesis sub-packages are generated from the .proto
// files next to them. Regenerate after editing the protos:
//
//	protoc --go_out=plugins=grpc:. recognition/recognitionv2.proto
//	protoc --go_out=plugins=grpc:. synthesis/synthesisv2.proto
package salutepb
