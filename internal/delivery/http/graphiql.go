package http

import "net/http"

// graphiqlPage is a minimal GraphiQL UI pointed at the local /graphql
// endpoint. Served only when the playground is enabled in config.
const graphiqlPage = `<!DOCTYPE html>
<html>
<head>
	<title>GraphiQL</title>
	<link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body style="margin: 0;">
	<div id="graphiql" style="height: 100vh;"></div>
	<script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: "/graphql" });
		ReactDOM.render(
			React.createElement(GraphiQL, { fetcher: fetcher }),
			document.getElementById("graphiql"),
		);
	</script>
</body>
</html>
`

// GraphiQL serves the playground page.
func GraphiQL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(graphiqlPage))
}
