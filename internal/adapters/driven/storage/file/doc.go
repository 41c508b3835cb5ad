// Package file provides a JSON file implementation of the reservation store.
//
// The whole reservation set is kept in one file, by default
// ~/.foodiespot/data/reservations.json, as an array indented with two spaces:
//
//	[
//	  {
//	    "id": "RES-10000",
//	    "restaurant_id": 1,
//	    "name": "Asha",
//	    "party_size": 2,
//	    "date": "2025-04-20",
//	    "time": "19:00",
//	    "special_requests": ""
//	  }
//	]
//
// Every Save rewrites the file through a temporary sibling and a rename.
package file
