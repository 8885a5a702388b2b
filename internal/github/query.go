package github

// ReviewThreadsQuery fetches the payload this command reads. Run it with:
//
//	gh api graphql -F owner=OWNER -F name=REPO -F number=123 -f query="$(gh unresolved-comments --print-query)"
const ReviewThreadsQuery = `query ($owner: String!, $name: String!, $number: Int!) {
  repository(owner: $owner, name: $name) {
    pullRequest(number: $number) {
      title
      reviewThreads(first: 100) {
        nodes {
          isResolved
          comments(first: 1) {
            nodes {
              path
              line
              author {
                login
              }
              body
            }
          }
        }
      }
    }
  }
}
`
