package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// responsivaField campo multipart que espera POST /equipment-requests.
const responsivaField = "responsiva"

var errResponsivaRequired = errors.New("censo: una laptop requiere --responsiva <archivo>")

// responsiva archivo firmado que acompaña al censo.
type responsiva struct {
	Name string
	Data []byte
}

func censoCmd() *cobra.Command {
	var apiURL, token, responsivaPath string
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "censo",
		Short: "Recolecta el hardware de este equipo y lo envía al portal",
		Long: `Lee /proc, /sys/class/dmi y /etc/os-release y envía el resultado a POST /equipment-requests
con el token de un usuario cliente. Una laptop exige la responsiva firmada (PDF o imagen),
que se envía como multipart con --responsiva.

Ejemplos:
  portalctl censo --dry-run
  portalctl censo --api https://portal.rdp.mx --token $TOKEN
  portalctl censo --api https://portal.rdp.mx --token $TOKEN --responsiva responsiva.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hostname, _ := os.Hostname()
			osFs := afero.NewReadOnlyFs(afero.NewOsFs())
			req := NewCollector(osFs).Collect(hostname, os.Getenv("USER"))

			if dryRun {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(req)
			}
			if token == "" {
				return fmt.Errorf("censo: --token es obligatorio sin --dry-run")
			}
			var file *responsiva
			if responsivaPath != "" {
				data, err := afero.ReadFile(osFs, responsivaPath)
				if err != nil {
					return fmt.Errorf("censo: leer responsiva: %w", err)
				}
				file = &responsiva{Name: filepath.Base(responsivaPath), Data: data}
			}
			out, err := submitCensus(cmd.Context(), http.DefaultClient, apiURL, token, req, file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:3000", "URL base del portal")
	cmd.Flags().StringVar(&token, "token", "", "JWT de un usuario cliente")
	cmd.Flags().StringVar(&responsivaPath, "responsiva", "", "responsiva firmada (pdf, jpg o png); obligatoria en laptops")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "muestra la solicitud sin enviarla")
	return cmd
}

// submitCensus envía la solicitud y devuelve la respuesta del portal. Sin archivo va como JSON;
// con responsiva va como multipart. Una laptop sin responsiva falla antes de llamar al portal.
func submitCensus(ctx context.Context, client *http.Client, apiURL, token string, in dto.CensusRequest, file *responsiva) (*dto.CensusResponse, error) {
	if entity.IsLaptop(in.TipoEquipo) && (file == nil || len(file.Data) == 0) {
		return nil, errResponsivaRequired
	}
	var (
		body        []byte
		contentType string
		err         error
	)
	if file != nil {
		body, contentType, err = censusMultipart(in, file)
	} else {
		body, err = json.Marshal(in)
		contentType = "application/json"
	}
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	url := strings.TrimRight(apiURL, "/") + "/equipment-requests"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("censo: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("censo: %d %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("censo: status %d", resp.StatusCode)
	}
	var out dto.CensusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("censo: respuesta inválida: %w", err)
	}
	return &out, nil
}

// censusMultipart arma el formulario con los mismos nombres de campo que el JSON.
// Los campos vacíos no se envían.
func censusMultipart(in dto.CensusRequest, file *responsiva) ([]byte, string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, "", err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if v == nil {
			continue
		}
		val := fmt.Sprint(v)
		if val == "" {
			continue
		}
		if err := w.WriteField(k, val); err != nil {
			return nil, "", err
		}
	}
	part, err := w.CreateFormFile(responsivaField, file.Name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
