// Package khiinpb holds the generated protobuf types for command.proto.
package khiinpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative command.proto
