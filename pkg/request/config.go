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

package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
	"github.com/NVIDIA/server-composer/pkg/hardware"
	"github.com/NVIDIA/server-composer/pkg/header"
	"github.com/NVIDIA/server-composer/pkg/serializer"
	"github.com/NVIDIA/server-composer/pkg/validator"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Query parameter names.
const (
	ParamCPU    = "cpu"
	ParamMemory = "memory"
	ParamGPU    = "gpu"
)

// ConfigResource is the Kubernetes-style document accepted in request bodies
// and configuration files.
type ConfigResource struct {
	Kind       string `json:"kind" yaml:"kind"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Metadata   struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	} `json:"metadata" yaml:"metadata"`
	Spec ConfigSpec `json:"spec" yaml:"spec"`
}

// ConfigSpec holds the untyped hardware fields of a ConfigResource.
// MemorySize accepts a number or comma-grouped text such as "131,072".
type ConfigSpec struct {
	CPU            string `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	MemorySize     any    `json:"memorySize,omitempty" yaml:"memorySize,omitempty"`
	GPUAccelerator bool   `json:"gpuAccelerator,omitempty" yaml:"gpuAccelerator,omitempty"`
}

// ParseConfigFromValues builds a HardwareConfig from URL query values.
// All parameters are optional: cpu defaults to X86, a blank memory means 0,
// and a blank gpu means false.
func ParseConfigFromValues(values url.Values) (hardware.HardwareConfig, error) {
	cfg := hardware.NewHardwareConfig()
	var errs field.ErrorList

	if s := strings.TrimSpace(values.Get(ParamCPU)); s != "" {
		cpu, err := hardware.ParseCPUModel(s)
		if err != nil {
			errs = append(errs, field.Invalid(field.NewPath(ParamCPU), s, errorMessage(err)))
		} else {
			cfg.CPU = cpu
		}
	}

	// whitespace-only is blank; any other text is validated as given
	if s := values.Get(ParamMemory); strings.TrimSpace(s) != "" {
		res := validator.ParseMemoryInput(s)
		if !res.Valid {
			errs = append(errs, field.Invalid(field.NewPath(ParamMemory), s, res.ErrorMessage))
		} else {
			cfg.MemorySize = *res.Value
		}
	}

	if s := strings.TrimSpace(values.Get(ParamGPU)); s != "" {
		gpu, err := strconv.ParseBool(s)
		if err != nil {
			errs = append(errs, field.Invalid(field.NewPath(ParamGPU), s, "must be a boolean"))
		} else {
			cfg.GPUAccelerator = gpu
		}
	}

	if len(errs) > 0 {
		return hardware.HardwareConfig{}, invalidRequest("invalid query parameters", errs)
	}

	return cfg, nil
}

// ParseConfigFromBody parses a ConfigResource from an HTTP request body.
// Supports JSON and YAML based on the Content-Type header; an empty or
// unrecognized type is parsed as JSON.
//
// Supported Content-Types:
//   - application/json
//   - application/x-yaml, application/yaml, text/yaml
func ParseConfigFromBody(body io.Reader, contentType string) (hardware.HardwareConfig, error) {
	if body == nil {
		return hardware.HardwareConfig{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return hardware.HardwareConfig{}, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}

	if len(data) == 0 {
		return hardware.HardwareConfig{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "request body is empty")
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	// strip charset and other params
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	format := serializer.FormatJSON
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		format = serializer.FormatYAML
	}

	reader, err := serializer.NewReader(format, bytes.NewReader(data))
	if err != nil {
		return hardware.HardwareConfig{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create body reader", err)
	}

	var raw ConfigResource
	if err := reader.Deserialize(&raw); err != nil {
		return hardware.HardwareConfig{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse %s body", strings.ToUpper(string(format))), err,
			map[string]any{"contentType": contentType})
	}

	return raw.ToConfig()
}

// LoadConfigFromFile loads a ConfigResource from a YAML or JSON file.
// The file format is detected from the file extension.
func LoadConfigFromFile(path string) (hardware.HardwareConfig, error) {
	raw, err := serializer.FromFile[ConfigResource](path)
	if err != nil {
		return hardware.HardwareConfig{}, fmt.Errorf("failed to load hardware config file: %w", err)
	}

	return raw.ToConfig()
}

// ToConfig checks the resource envelope and converts the spec to a typed
// HardwareConfig. Kind and apiVersion are only checked when present.
func (r *ConfigResource) ToConfig() (hardware.HardwareConfig, error) {
	var errs field.ErrorList

	if r.Kind != "" && r.Kind != header.KindHardwareConfig.String() {
		errs = append(errs, field.NotSupported(field.NewPath("kind"), r.Kind,
			[]string{header.KindHardwareConfig.String()}))
	}
	if r.APIVersion != "" && r.APIVersion != header.APIVersion {
		errs = append(errs, field.NotSupported(field.NewPath("apiVersion"), r.APIVersion,
			[]string{header.APIVersion}))
	}

	specPath := field.NewPath("spec")
	cfg := hardware.NewHardwareConfig()
	cfg.GPUAccelerator = r.Spec.GPUAccelerator

	if s := strings.TrimSpace(r.Spec.CPU); s != "" {
		cpu, err := hardware.ParseCPUModel(s)
		if err != nil {
			errs = append(errs, field.Invalid(specPath.Child("cpu"), s, errorMessage(err)))
		} else {
			cfg.CPU = cpu
		}
	}

	if r.Spec.MemorySize != nil {
		res := memoryResult(r.Spec.MemorySize)
		if !res.Valid {
			errs = append(errs, field.Invalid(specPath.Child("memorySize"), r.Spec.MemorySize, res.ErrorMessage))
		} else {
			cfg.MemorySize = *res.Value
		}
	}

	if len(errs) > 0 {
		return hardware.HardwareConfig{}, invalidRequest("invalid hardware config", errs)
	}

	return cfg, nil
}

// memoryResult validates a decoded memorySize value. JSON numbers arrive as
// float64, YAML integers as int, and quoted values as strings.
func memoryResult(v any) validator.ValidationResult {
	switch m := v.(type) {
	case int:
		return validator.ValidateMemorySize(m)
	case int64:
		return validator.ValidateMemoryValue(float64(m))
	case uint64:
		return validator.ValidateMemoryValue(float64(m))
	case float64:
		return validator.ValidateMemoryValue(m)
	case string:
		return validator.ParseMemoryInput(m)
	default:
		return validator.ValidationResult{
			Kind:         validator.KindNotInteger,
			ErrorMessage: validator.MsgNotNumber,
		}
	}
}

// errorMessage returns the message of a structured error without its code
// prefix, so suggestions such as "did you mean" survive into field errors.
func errorMessage(err error) string {
	var se *apperrors.StructuredError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

func invalidRequest(msg string, errs field.ErrorList) error {
	details := make([]string, 0, len(errs))
	for _, e := range errs {
		details = append(details, e.Error())
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, msg, errs.ToAggregate(),
		map[string]any{"fields": details})
}
