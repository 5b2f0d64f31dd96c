package protointrospect

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// LoadDescriptorSet builds a registry from a serialized FileDescriptorSet,
// the output of `protoc --descriptor_set_out`. Every message type in the set,
// including nested declarations, is registered as a dynamicpb type.
func LoadDescriptorSet(data []byte) (*Registry, error) {
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("protointrospect: unmarshal descriptor set: %w", err)
	}

	files, err := protodesc.NewFiles(&set)
	if err != nil {
		return nil, fmt.Errorf("protointrospect: build files: %w", err)
	}

	registry := NewRegistry()
	var rangeErr error
	files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		rangeErr = registerMessages(registry, fd.Messages())
		return rangeErr == nil
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return registry, nil
}

func registerMessages(registry *Registry, messages protoreflect.MessageDescriptors) error {
	for i := 0; i < messages.Len(); i++ {
		md := messages.Get(i)
		// Synthetic map entries are not generatable message types.
		if md.IsMapEntry() {
			continue
		}
		if err := registry.Register(dynamicpb.NewMessageType(md)); err != nil {
			return err
		}
		if err := registerMessages(registry, md.Messages()); err != nil {
			return err
		}
	}
	return nil
}
