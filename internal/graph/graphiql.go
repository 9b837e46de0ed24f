package graph

import "net/http"

const graphiqlPage = `<!DOCTYPE html>
<html>
<head>
	<title>GraphiQL</title>
	<style>html, body, #graphiql { height: 100%; margin: 0; }</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body>
	<div id="graphiql">Loading...</div>
	<script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
	<script>
		ReactDOM.render(
			React.createElement(GraphiQL, {
				fetcher: GraphiQL.createFetcher({ url: '/query' }),
			}),
			document.getElementById('graphiql'),
		);
	</script>
</body>
</html>`

// GraphiQLHandler serves the browser exploration UI.
func GraphiQLHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(graphiqlPage))
	})
}
