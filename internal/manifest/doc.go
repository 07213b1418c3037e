// Package manifest decodes {level, objects, actions} documents.
//
// The same shape is used by the static reachability manifest (a JSON array
// of documents, one per level) and by the coverage output the game writes
// at the end of each level (one JSON object per level played, possibly
// several concatenated in one capture). Parse accepts either form.
//
// Each document is checked against a small CUE schema before decoding:
//
//	#Document: {
//	    level:   int & >=1
//	    objects: [...int & >=0]
//	    actions: [...int & >=0]
//	    ...
//	}
//
// Only the fields needed to classify entities are constrained; anything
// else the game adds is ignored.
package manifest
