package rest

import "net/http"

// RouterDeps bundles everything the router mounts. Uploads may be nil, which
// leaves the upload route unmounted (object store not configured).
// UploadLimit optionally wraps the upload route; APIChain wraps the whole
// /api/v1 subtree. Health endpoints stay outside the chain so probes do not
// flood the request log.
type RouterDeps struct {
	Health      *HealthHandler
	Quests      *QuestHandler
	Activity    *ActivityHandler
	Uploads     *UploadHandler
	APIChain    func(http.Handler) http.Handler
	UploadLimit func(http.Handler) http.Handler
}

// NewRouter assembles the HTTP routing table.
func NewRouter(deps RouterDeps) *http.ServeMux {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/v1/quests", deps.Quests.Create)
	api.HandleFunc("GET /api/v1/quests", deps.Quests.List)
	api.HandleFunc("GET /api/v1/quests/{id}", deps.Quests.Get)
	api.HandleFunc("PATCH /api/v1/quests/{id}", deps.Quests.Update)
	api.HandleFunc("POST /api/v1/quests/{id}/join", deps.Quests.Join)
	api.HandleFunc("POST /api/v1/quests/{id}/submit", deps.Quests.Submit)
	api.HandleFunc("POST /api/v1/quests/{id}/participants/{userID}/verify", deps.Quests.Verify)
	api.HandleFunc("GET /api/v1/quests/{id}/participants", deps.Quests.ListParticipants)
	api.HandleFunc("GET /api/v1/activity", deps.Activity.Feed)

	if deps.Uploads != nil {
		var upload http.Handler = http.HandlerFunc(deps.Uploads.Proof)
		if deps.UploadLimit != nil {
			upload = deps.UploadLimit(upload)
		}
		api.Handle("POST /api/v1/uploads/proof", upload)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	var apiHandler http.Handler = api
	if deps.APIChain != nil {
		apiHandler = deps.APIChain(api)
	}
	mux.Handle("/api/v1/", apiHandler)

	return mux
}
