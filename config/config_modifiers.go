// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strings"
	"time"
)

func (c *config) Modify(newValues ...NodeConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return err
	}

	return populateConfig(cfg, data)
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

// populateConfig sets every entry of data, keyed by its file name (program-id) or its key name (PROGRAM_ID);
// all decoding failures are reported together
func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	var errs *multierror.Error
	for key, value := range data {
		name := convertKeyName(key)
		kind, known := knownKeys[name]
		if !known {
			errs = multierror.Append(errs, errors.Errorf("unknown config key %s", key))
			continue
		}

		if err := setValue(cfg, name, kind, value); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "could not decode value for config key %s", key))
		}
	}

	return errs.ErrorOrNil()
}

func setValue(cfg mutableNodeConfig, name string, kind valueKind, value interface{}) error {
	switch kind {
	case kindProgramId:
		var str string
		if err := decodeValue(value, &str); err != nil {
			return err
		}
		programId, err := encoding.DecodeHexOfSize(str, protocol.ADDRESS_SIZE_BYTES)
		if err != nil {
			return err
		}
		cfg.SetProgramId(programId)
	case kindString:
		var str string
		if err := decodeValue(value, &str); err != nil {
			return err
		}
		cfg.SetString(name, str)
	case kindUint32:
		var number uint32
		if err := decodeValue(value, &number); err != nil {
			return err
		}
		cfg.SetUint32(name, number)
	case kindDuration:
		var duration time.Duration
		if err := decodeValue(value, &duration); err != nil {
			return err
		}
		cfg.SetDuration(name, duration)
	case kindBool:
		var flag bool
		if err := decodeValue(value, &flag); err != nil {
			return err
		}
		cfg.SetBool(name, flag)
	}
	return nil
}

// decodeValue accepts the loose types found in json files and environment variables, eg. "5s" for a
// duration or "true" for a bool
func decodeValue(input interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// GetNodeConfigFromFiles layers the production defaults, then each file in order, then COUNTER_* environment variables
func GetNodeConfigFromFiles(configFiles FilesPaths, httpAddress string) (NodeConfig, error) {
	cfg := ForProduction(nil)

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "failed parsing config file %s", configFile)
		}
	}

	if err := modifyFromEnvironment(cfg); err != nil {
		return nil, err
	}

	if httpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, httpAddress)
	}

	return cfg, nil
}
