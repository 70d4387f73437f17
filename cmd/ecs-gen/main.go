// Command ecs-gen writes the component and system table used by ecs-stress.
//
//	ecs-gen -components 32 -systems 50 -out cmd/ecs-stress/generated.go
package main

import (
	"bytes"
	"flag"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	params := Params{}
	flag.StringVar(&params.Package, "package", "main", "package name of the generated file")
	flag.IntVar(&params.Components, "components", 32, "number of component kinds (at most 32)")
	flag.IntVar(&params.Systems, "systems", 50, "number of systems")
	flag.Uint64Var(&params.Seed, "seed", 1, "seed for the random query filters")
	out := flag.String("out", "generated.go", "output file, - for stdout")
	flag.Parse()

	log := logrus.WithField("component", "ecs-gen")

	var buf bytes.Buffer
	if err := Generate(&buf, params); err != nil {
		log.WithError(err).Fatal("generation failed")
	}

	if *out == "-" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			log.WithError(err).Fatal("write failed")
		}
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.WithError(err).Fatal("write failed")
	}
	log.WithFields(logrus.Fields{
		"file":       *out,
		"components": params.Components,
		"systems":    params.Systems,
	}).Info("generated")
}
