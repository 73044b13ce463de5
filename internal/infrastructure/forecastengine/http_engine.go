// Package forecastengine adaptador HTTP hacia el motor externo de pronóstico
// de demanda. El motor es una caja negra: recibe la serie histórica y devuelve
// JSON que este servicio reenvía sin interpretar.
package forecastengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/forecast"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
)

// Verificar en tiempo de compilación que HTTPEngine implementa el puerto.
var _ forecast.Engine = (*HTTPEngine)(nil)

// HTTPEngine cliente del motor de pronóstico vía POST JSON.
type HTTPEngine struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPEngine construye el adaptador. timeout <= 0 usa 15 s.
func NewHTTPEngine(baseURL string, timeout time.Duration) *HTTPEngine {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPEngine{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forecast envía la serie histórica al motor y devuelve su respuesta cruda.
// Cualquier fallo de red o de estado se traduce a ErrForecastUnavailable para
// que la capa HTTP lo exponga como 503.
func (e *HTTPEngine) Forecast(ctx context.Context, payload dto.ForecastRequestPayload) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("forecast: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/forecast", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("forecast: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("forecast: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrForecastUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("forecast: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: motor respondió HTTP %d", domain.ErrForecastUnavailable, resp.StatusCode)
	}
	if !json.Valid(rawBody) {
		return nil, fmt.Errorf("%w: respuesta no es JSON válido", domain.ErrForecastUnavailable)
	}
	return json.RawMessage(rawBody), nil
}
