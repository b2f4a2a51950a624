package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/pkg/logger"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})

	l.Component("ventas").Info().Str("factura", "F000001").Msg("venta creada")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ventas", line["component"])
	assert.Equal(t, "F000001", line["factura"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "ruidoso", Out: &buf})

	l.Debug().Msg("no debe salir")
	assert.Empty(t, buf.String())

	l.Warn().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}
