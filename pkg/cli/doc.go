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

// Package cli implements the composer command-line tool.
//
// # Commands
//
// validate - Validate memory sizes:
//
//	composer validate 4096 131,072 [--fail-on-error]
//
// Reports one ValidationResult document per size. Invalid sizes are results,
// not errors, unless --fail-on-error is set.
//
// recommend - Decide eligible server models:
//
//	composer recommend --cpu Power --memory 262,144 [--gpu]
//	composer recommend --config hardware.yaml
//
// Produces a Recommendation document listing the eligible server models, or
// none when nothing matches.
//
// format - Add or remove thousands separators:
//
//	composer format 8388608
//	composer format --remove 8,388,608
//
// options - List supported CPU models, server models, and memory bounds.
//
// interactive - Edit a hardware form line by line and submit it.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Document commands also accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	COMPOSER_LOG_LEVEL  Default for --log-level
//	COMPOSER_FORMAT     Default for --format
//	COMPOSER_CPU        Default for recommend --cpu
//	COMPOSER_MEMORY     Default for recommend --memory
//	COMPOSER_GPU        Default for recommend --gpu
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, failed validation with --fail-on-error, or execution failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/server-composer/pkg/cli.version=1.0.0'"
package cli
