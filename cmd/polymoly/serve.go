package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/jonathanmweiss/polymoly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const maxBodyBytes = 1 << 20 // 1 MiB

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "serve polynomial operations over HTTP.",
	Long: `Serve polynomial operations as JSON over HTTP.
	POST /calculate     {"ring", "modulus", "operation", "lhs", "rhs"}
	POST /evaluate      {"ring", "modulus", "polynomial", "x"}
	POST /interpolate   {"ring", "modulus", "xs", "ys"}
	POST /ring          {"ring", "modulus"}
	GET  /health
	Polynomials above --max-degree are rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)

		addr := getString(cmd, "addr")
		srv := &http.Server{
			Addr:              addr,
			Handler:           newServer(calculator(cmd)),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		go func() {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warnf("shutdown: %v", err)
			}
		}()

		log.Infof("polymoly listening on %s", addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err)
			os.Exit(1)
		}
	},
}

type calculateRequest struct {
	polymoly.RingSpec
	Operation polymoly.Operation `json:"operation"`
	LHS       string             `json:"lhs"`
	RHS       string             `json:"rhs"`
}

type evaluateRequest struct {
	polymoly.RingSpec
	Polynomial string `json:"polynomial"`
	X          string `json:"x"`
}

type interpolateRequest struct {
	polymoly.RingSpec
	Xs []string `json:"xs"`
	Ys []string `json:"ys"`
}

// newServer routes the HTTP API to calc.
func newServer(calc *polymoly.Calculator) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /calculate", func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		res, err := calc.Calculate(req.RingSpec, req.Operation, req.LHS, req.RHS)
		writeResponse(w, r, res, err)
	})

	mux.HandleFunc("POST /evaluate", func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		res, err := calc.EvaluateAt(req.RingSpec, req.Polynomial, req.X)
		writeResponse(w, r, res, err)
	})

	mux.HandleFunc("POST /interpolate", func(w http.ResponseWriter, r *http.Request) {
		var req interpolateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		res, err := calc.InterpolatePoints(req.RingSpec, req.Xs, req.Ys)
		writeResponse(w, r, res, err)
	})

	mux.HandleFunc("POST /ring", func(w http.ResponseWriter, r *http.Request) {
		var req polymoly.RingSpec
		if !decodeRequest(w, r, &req) {
			return
		}

		res, err := calc.RingInfo(req)
		writeResponse(w, r, res, err)
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return recoverPanics(mux)
}

func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("panic in %s: %v\n%s", r.URL.Path, rec, debug.Stack())
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// decodeRequest reads a single JSON object into req, answering 400 and
// returning false when the body is malformed.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(req)
	if err == nil && dec.More() {
		err = errors.New("invalid JSON: trailing data")
	}

	if err != nil {
		writeError(w, r, fmt.Errorf("bad request: %w", err))

		return false
	}

	return true
}

func writeResponse(w http.ResponseWriter, r *http.Request, res *polymoly.Result, err error) {
	if err != nil {
		writeError(w, r, err)

		return
	}

	log.WithFields(log.Fields{
		"path":      r.URL.Path,
		"ring":      res.Ring,
		"operation": res.Operation,
	}).Debug("served")

	writeJSON(w, http.StatusOK, res)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithField("path", r.URL.Path).Warn(err)
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
