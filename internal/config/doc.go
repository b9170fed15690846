// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package config loads the settings of the units command from a YAML file,
// by default $XDG_CONFIG_HOME/units/config.yaml.
//
// Config fields:
//   - precision: digits shown after the decimal point (default 4)
//   - rational: also show exact conversion factors as num/den
//   - database: path of the conversion factor store (default ~/data/unit-factors.sqlite3)
//   - log_level: debug, info, warn or error (default warn)
//   - log_format: text or json (default text)
//
// Load(path) applies defaults before unmarshalling, then validates.
package config
