// Package config loads commonui.json, the configuration of the commonui
// tool: default style platform, gallery server address, metrics and tracing,
// and the S3 destination for gallery exports.
//
//	{
//	  "platform": "electron",
//	  "server": {"host": "localhost", "port": 3100, "metrics": true},
//	  "export": {"bucket": "ui-gallery", "prefix": "commonui/", "region": "us-east-1"},
//	  "tracing": {"enabled": false, "exporter": "stdout"}
//	}
//
// A missing file is not an error; every field has a default.
// COMMONUI_PLATFORM and COMMONUI_PORT override the file.
package config
