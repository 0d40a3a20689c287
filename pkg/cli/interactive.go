// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/server-composer/pkg/form"
	"github.com/NVIDIA/server-composer/pkg/hardware"
	"github.com/NVIDIA/server-composer/pkg/recommender"
)

const (
	prompt = "> "

	interactiveHelp = `Commands:
  cpu <X86|Power|ARM>   select the CPU model
  memory <size>         enter the memory size in MB (commas allowed)
  gpu <on|off>          toggle the GPU accelerator
  submit                decide the eligible server models
  show                  print the form and the last results
  help                  print this help
  quit                  exit`
)

func interactiveCmd() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Fill in a hardware form line by line and submit it",
		Description: `Start a prompt that edits a hardware form. Results are shown only while
the form is unchanged since the last submit.

` + interactiveHelp,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root := cmd.Root()
			s := &session{
				form:        form.New(),
				recommender: recommender.New(recommender.WithVersion(version)),
				out:         root.Writer,
			}
			return s.run(ctx, root.Reader)
		},
	}
}

type session struct {
	form        *form.Form
	recommender *recommender.Recommender
	models      []hardware.ServerModel
	out         io.Writer
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(s.out, interactiveHelp)

	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := s.handle(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle executes one command line and reports whether the session ended.
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "":
	case "cpu":
		cpu, err := hardware.ParseCPUModel(arg)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false, nil
		}
		s.form.SetCPU(cpu)
		fmt.Fprintf(s.out, "cpu: %s\n", cpu)
	case "memory":
		res := s.form.SetMemoryText(arg)
		if res.Valid {
			s.form.BlurMemory()
		}
		if msg := s.form.MemoryError(); msg != "" {
			fmt.Fprintf(s.out, "memory: %s\n", msg)
			return false, nil
		}
		fmt.Fprintf(s.out, "memory: %s\n", s.form.MemoryText())
	case "gpu":
		on, err := parseToggle(arg)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false, nil
		}
		s.form.SetGPU(on)
		fmt.Fprintf(s.out, "gpu: %t\n", on)
	case "submit":
		rec, err := s.recommender.Recommend(ctx, s.form.Submit())
		if err != nil {
			return false, fmt.Errorf("error deciding server models: %w", err)
		}
		s.models = rec.Models
		s.printResults()
	case "show":
		s.printForm()
		s.printResults()
	case "help":
		fmt.Fprintln(s.out, interactiveHelp)
	case "quit", "exit":
		return true, nil
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help for a list\n", verb)
	}
	return false, nil
}

func (s *session) printForm() {
	memory := s.form.MemoryText()
	if memory == "" {
		memory = "<unset>"
	}
	fmt.Fprintf(s.out, "cpu: %s\nmemory: %s\ngpu: %t\n", s.form.CPU(), memory, s.form.GPU())
	if msg := s.form.MemoryError(); msg != "" {
		fmt.Fprintf(s.out, "error: %s\n", msg)
	}
}

func (s *session) printResults() {
	lines, ok := s.form.Results(s.models)
	if !ok {
		fmt.Fprintln(s.out, "form changed, submit to see server models")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(s.out, "  %s\n", l)
	}
}

func parseToggle(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("gpu: %q is not on or off", s)
	}
	return b, nil
}
