package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/goliatone/go-protofake/pkg/generator"
	"github.com/goliatone/go-protofake/pkg/profile"
	"github.com/goliatone/go-protofake/pkg/protointrospect"
)

func main() {
	descriptorSet := flag.String("descriptor-set", "", "serialized FileDescriptorSet (protoc --descriptor_set_out)")
	typeName := flag.String("type", "", "full message type name to generate")
	count := flag.Int("count", 1, "number of instances to generate")
	profilePath := flag.String("profile", "", "YAML generation profile")
	output := flag.String("output", "", "output file (stdout if empty)")
	list := flag.Bool("list", false, "list message types in the descriptor set and exit")
	verbose := flag.Bool("verbose", false, "log per-field resolution failures")
	flag.Parse()

	if *descriptorSet == "" {
		log.Fatal("missing -descriptor-set")
	}

	data, err := os.ReadFile(*descriptorSet)
	if err != nil {
		log.Fatalf("Failed to read descriptor set: %v", err)
	}
	registry, err := protointrospect.LoadDescriptorSet(data)
	if err != nil {
		log.Fatalf("Failed to load descriptor set: %v", err)
	}

	if *list {
		fmt.Println(strings.Join(registry.List(), "\n"))
		return
	}

	var prof profile.Profile
	if *profilePath != "" {
		prof, err = profile.Load(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
	}

	target := *typeName
	if target == "" {
		target = prof.Type
	}
	if target == "" {
		log.Fatal("missing -type (or a profile with a type)")
	}

	intr, err := registry.Introspector(target)
	if err != nil {
		log.Fatalf("Failed to resolve type: %v", err)
	}

	options := prof.Options()
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		defer logger.Sync()
		options = append(options, generator.WithLogger(logger))
	}

	gen := prof.Apply(generator.New(intr, options...))

	n := *count
	if prof.Count > 0 && n == 1 {
		n = prof.Count
	}

	instances, err := gen.GenerateMany(n)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	marshal := protojson.MarshalOptions{Multiline: true, Indent: "  "}
	var out strings.Builder
	for _, instance := range instances {
		payload, err := marshal.Marshal(instance.(proto.Message))
		if err != nil {
			log.Fatalf("Failed to marshal instance: %v", err)
		}
		out.Write(payload)
		out.WriteByte('\n')
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out.String()), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Instances written to %s\n", *output)
	} else {
		fmt.Print(out.String())
	}
}
