package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/mozzart/catalog"
	"github.com/jsphweid/mozzart/chord"
	"github.com/jsphweid/mozzart/interval"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/jsphweid/mozzart/scale"
	"github.com/jsphweid/mozzart/sequence"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves scales, chords and interval conversions over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build before the first request rather than during it
		catalog.Default()
		logger.Info("serving", "addr", conf.Addr)
		return http.ListenAndServe(conf.Addr, NewRouter())
	},
}

// NewRouter returns the HTTP API with request ids, access logging and CORS.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID, accessLog)
	router.HandleFunc("/scales/{key}/{quality}", handleScale).Methods(http.MethodGet)
	router.HandleFunc("/chords/identify", handleIdentify).Methods(http.MethodPost)
	router.HandleFunc("/chords/{key}/{quality}", handleChord).Methods(http.MethodGet)
	router.HandleFunc("/intervals", handleIntervals).Methods(http.MethodPost)
	router.HandleFunc("/pitches", handlePitches).Methods(http.MethodPost)
	router.HandleFunc("/pitches/{name}", handlePitch).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request",
			"id", w.Header().Get("X-Request-Id"),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "could not decode request body")
	}
	return nil
}

func toInts[A ~int | ~uint8](values []A) []int {
	res := make([]int, 0, len(values))
	for _, v := range values {
		res = append(res, int(v))
	}
	return res
}

func toPitches(values []int) ([]model.Pitch, error) {
	res := make([]model.Pitch, 0, len(values))
	for _, v := range values {
		p, err := pitch.New(v)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func sequenceResponse(name string, pitches []model.Pitch) model.SequenceResponse {
	return model.SequenceResponse{Name: name, Pitches: toInts(pitches), Names: pitch.Names(pitches)}
}

// queryOctave reads ?octave=, falling back to the configured octave.
func queryOctave(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("octave")
	if raw == "" {
		return conf.Octave, nil
	}
	octave, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("invalid octave %q", raw)
	}
	return octave, nil
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q, err := scale.ParseQuality(vars["quality"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := pitch.ParseClass(vars["key"]); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	octave, err := queryOctave(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s, ok := catalog.Default().Scale(vars["key"], q, octave)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("no %v scale on %v in octave %d", q, vars["key"], octave))
		return
	}
	writeJSON(w, http.StatusOK, sequenceResponse(pitch.NormalizeClass(vars["key"])+" "+q.String(), s.Pitches))
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q, err := chord.ParseQuality(vars["quality"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := pitch.ParseClass(vars["key"]); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	octave, err := queryOctave(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, ok := catalog.Default().Chord(vars["key"], q, octave)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("no %v chord on %v in octave %d", q, vars["key"], octave))
		return
	}
	writeJSON(w, http.StatusOK, sequenceResponse(chord.Name(c), c.Pitches))
}

func handleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.PitchesRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pitches, err := toPitches(input.Pitches)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.IdentifyResponse{Key: chord.CreateChordKey(pitches)}
	if q, ok := chord.Identify(pitches); ok {
		res.Known = true
		res.Quality = q.String()
		res.Name = chord.Name(model.Chord{Quality: q, Root: pitches[0], Pitches: pitches})
	}
	writeJSON(w, http.StatusOK, res)
}

func handleIntervals(w http.ResponseWriter, r *http.Request) {
	var input model.PitchesRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pitches, err := toPitches(input.Pitches)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	intervals := sequence.IntoIntervals(pitches)
	writeJSON(w, http.StatusOK, model.IntervalsResponse{
		Intervals: toInts(intervals),
		Names:     interval.Names(intervals),
	})
}

func handlePitches(w http.ResponseWriter, r *http.Request) {
	var input model.IntervalsRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root, err := pitch.New(input.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	intervals := make([]model.Interval, 0, len(input.Intervals))
	for _, i := range input.Intervals {
		intervals = append(intervals, model.Interval(i))
	}

	pitches, err := sequence.IntoPitches(root, intervals)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, sequenceResponse("", pitches))
}

func handlePitch(w http.ResponseWriter, r *http.Request) {
	p, err := parsePitch(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PitchResponse{
		Pitch:      int(p),
		Name:       pitch.Name(p),
		PitchClass: pitch.PitchClass(p),
		Octave:     pitch.Octave(p),
	})
}
